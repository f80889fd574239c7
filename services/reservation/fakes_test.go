package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mockview/models"

	bookingRepo "mockview/database/repository/booking"
	candidateRepo "mockview/database/repository/candidate"
	interviewerRepo "mockview/database/repository/interviewer"
	paymentRepo "mockview/database/repository/payment"
	slotRepo "mockview/database/repository/slot"

	"go.uber.org/zap"

	"mockview/services/gateway"
)

// fakeStore is a single in-memory backing store shared by the fake repos, so
// the unit of work can snapshot and restore all of them together the way a
// mongo transaction would.
type fakeStore struct {
	slots        map[string]*models.Slot
	bookings     map[string]*models.Booking
	payments     map[string]*models.Payment
	candidates   map[string]*models.Candidate
	interviewers map[string]*models.Interviewer
	users        map[string]*models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:        map[string]*models.Slot{},
		bookings:     map[string]*models.Booking{},
		payments:     map[string]*models.Payment{},
		candidates:   map[string]*models.Candidate{},
		interviewers: map[string]*models.Interviewer{},
		users:        map[string]*models.User{},
	}
}

type storeSnapshot struct {
	slots        map[string]*models.Slot
	bookings     map[string]*models.Booking
	payments     map[string]*models.Payment
	interviewers map[string]*models.Interviewer
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		slots:        map[string]*models.Slot{},
		bookings:     map[string]*models.Booking{},
		payments:     map[string]*models.Payment{},
		interviewers: map[string]*models.Interviewer{},
	}
	for id, v := range s.slots {
		c := *v
		snap.slots[id] = &c
	}
	for id, v := range s.bookings {
		c := *v
		snap.bookings[id] = &c
	}
	for id, v := range s.payments {
		c := *v
		snap.payments[id] = &c
	}
	for id, v := range s.interviewers {
		c := *v
		snap.interviewers[id] = &c
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.slots = snap.slots
	s.bookings = snap.bookings
	s.payments = snap.payments
	s.interviewers = snap.interviewers
}

// fakeUoW snapshots the store before the transactional function runs and
// rolls back on error, mimicking all-or-nothing commit semantics.
// beforeTxn, when set, runs just before the snapshot: it lets a test
// interleave a competing writer between the coordinator's pre-read and its
// transaction.
type fakeUoW struct {
	store      *fakeStore
	failCommit bool
	beforeTxn  func()
}

func (u *fakeUoW) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.beforeTxn != nil {
		u.beforeTxn()
		u.beforeTxn = nil
	}
	snap := u.store.snapshot()
	if err := fn(ctx); err != nil {
		u.store.restore(snap)
		return err
	}
	if u.failCommit {
		u.store.restore(snap)
		return errors.New("transaction commit aborted")
	}
	return nil
}

type fakeSlotRepo struct{ store *fakeStore }

func (r *fakeSlotRepo) Create(_ context.Context, slot *models.Slot) error {
	c := *slot
	r.store.slots[slot.ID] = &c
	return nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*models.Slot, error) {
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, slotRepo.ErrNotFound
	}
	c := *slot
	return &c, nil
}

func (r *fakeSlotRepo) Reserve(_ context.Context, slotID, bookingID string, expectedVersion int) error {
	slot, ok := r.store.slots[slotID]
	if !ok || slot.Status != models.SlotAvailable || slot.Version != expectedVersion {
		return slotRepo.ErrNotReservable
	}
	slot.Status = models.SlotPendingPayment
	slot.CurrentBookingID = bookingID
	slot.Version++
	return nil
}

func (r *fakeSlotRepo) ConfirmBooked(_ context.Context, slotID, bookingID string) error {
	slot, ok := r.store.slots[slotID]
	if !ok || slot.Status != models.SlotPendingPayment || slot.CurrentBookingID != bookingID {
		return slotRepo.ErrNotReservable
	}
	slot.Status = models.SlotBooked
	slot.Version++
	return nil
}

func (r *fakeSlotRepo) Release(_ context.Context, slotID, bookingID string) error {
	slot, ok := r.store.slots[slotID]
	if !ok || slot.Status != models.SlotPendingPayment || slot.CurrentBookingID != bookingID {
		return slotRepo.ErrNotReservable
	}
	slot.Status = models.SlotAvailable
	slot.CurrentBookingID = ""
	slot.Version++
	return nil
}

func (r *fakeSlotRepo) EnsureIndexes() error { return nil }

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	c := *booking
	r.store.bookings[booking.ID] = &c
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	c := *booking
	return &c, nil
}

func (r *fakeBookingRepo) SetPayment(_ context.Context, bookingID, paymentID string) error {
	booking, ok := r.store.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	booking.PaymentID = paymentID
	return nil
}

func (r *fakeBookingRepo) TransitionStatus(_ context.Context, bookingID string, from, to models.BookingStatus) error {
	booking, ok := r.store.bookings[bookingID]
	if !ok || booking.Status != from {
		return bookingRepo.ErrInvalidTransition
	}
	booking.Status = to
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakePaymentRepo struct{ store *fakeStore }

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	c := *payment
	r.store.payments[payment.ID] = &c
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*models.Payment, error) {
	payment, ok := r.store.payments[id]
	if !ok {
		return nil, paymentRepo.ErrNotFound
	}
	c := *payment
	return &c, nil
}

func (r *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID string) (*models.Payment, error) {
	for _, payment := range r.store.payments {
		if payment.BookingID == bookingID {
			c := *payment
			return &c, nil
		}
	}
	return nil, paymentRepo.ErrNotFound
}

func (r *fakePaymentRepo) GetByOrderID(_ context.Context, orderID string) (*models.Payment, error) {
	for _, payment := range r.store.payments {
		if payment.OrderID == orderID && orderID != "" {
			c := *payment
			return &c, nil
		}
	}
	return nil, paymentRepo.ErrNotFound
}

func (r *fakePaymentRepo) SetProviderOrder(_ context.Context, paymentID, orderID string) error {
	payment, ok := r.store.payments[paymentID]
	if !ok {
		return paymentRepo.ErrNotFound
	}
	payment.OrderID = orderID
	return nil
}

func (r *fakePaymentRepo) Complete(_ context.Context, paymentID, providerPaymentID, signature string) error {
	payment, ok := r.store.payments[paymentID]
	if !ok || payment.Status != models.PaymentPending {
		return paymentRepo.ErrInvalidTransition
	}
	payment.Status = models.PaymentCompleted
	payment.ProviderPaymentID = providerPaymentID
	payment.Signature = signature
	return nil
}

func (r *fakePaymentRepo) Fail(_ context.Context, paymentID string) error {
	payment, ok := r.store.payments[paymentID]
	if !ok || payment.Status != models.PaymentPending {
		return paymentRepo.ErrInvalidTransition
	}
	payment.Status = models.PaymentFailed
	return nil
}

func (r *fakePaymentRepo) EnsureIndexes() error { return nil }

type fakeCandidateRepo struct{ store *fakeStore }

func (r *fakeCandidateRepo) FindByUserID(_ context.Context, userID string) (*models.Candidate, error) {
	for _, candidate := range r.store.candidates {
		if candidate.UserID == userID {
			c := *candidate
			return &c, nil
		}
	}
	return nil, candidateRepo.ErrNotFound
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id string) (*models.Candidate, error) {
	candidate, ok := r.store.candidates[id]
	if !ok {
		return nil, candidateRepo.ErrNotFound
	}
	c := *candidate
	return &c, nil
}

func (r *fakeCandidateRepo) EnsureIndexes() error { return nil }

type fakeInterviewerRepo struct{ store *fakeStore }

func (r *fakeInterviewerRepo) GetByID(_ context.Context, id string) (*models.Interviewer, error) {
	interviewer, ok := r.store.interviewers[id]
	if !ok {
		return nil, interviewerRepo.ErrNotFound
	}
	c := *interviewer
	return &c, nil
}

func (r *fakeInterviewerRepo) FindByUserID(_ context.Context, userID string) (*models.Interviewer, error) {
	for _, interviewer := range r.store.interviewers {
		if interviewer.UserID == userID {
			c := *interviewer
			return &c, nil
		}
	}
	return nil, interviewerRepo.ErrNotFound
}

func (r *fakeInterviewerRepo) SetVerificationStatus(_ context.Context, id string, status models.VerificationStatus) error {
	interviewer, ok := r.store.interviewers[id]
	if !ok {
		return interviewerRepo.ErrNotFound
	}
	interviewer.VerificationStatus = status
	return nil
}

func (r *fakeInterviewerRepo) CreditBalance(_ context.Context, id string, amount float64) error {
	interviewer, ok := r.store.interviewers[id]
	if !ok {
		return interviewerRepo.ErrNotFound
	}
	interviewer.TotalBalance += amount
	return nil
}

func (r *fakeInterviewerRepo) EnsureIndexes() error { return nil }

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	c := *user
	return &c, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			c := *user
			return &c, nil
		}
	}
	return nil, errors.New("user not found")
}

type orderCall struct {
	amount   int64
	currency string
	receipt  string
}

// fakeGateway records order creations. Orders are keyed by receipt, so a
// retried CreateOrder with the same receipt yields the same order id.
type fakeGateway struct {
	calls         []orderCall
	orders        map[string]*gateway.Order
	createErr     error
	amountOffset  int64
	signatureOK   bool
	verifiedCalls [][3]string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{orders: map[string]*gateway.Order{}, signatureOK: true}
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (*gateway.Order, error) {
	g.calls = append(g.calls, orderCall{amount: amountMinor, currency: currency, receipt: receipt})
	if g.createErr != nil {
		return nil, g.createErr
	}
	if order, ok := g.orders[receipt]; ok {
		return order, nil
	}
	order := &gateway.Order{
		ID:       fmt.Sprintf("order_%s", receipt),
		Amount:   amountMinor + g.amountOffset,
		Currency: currency,
	}
	g.orders[receipt] = order
	return order, nil
}

func (g *fakeGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	g.verifiedCalls = append(g.verifiedCalls, [3]string{orderID, paymentID, signature})
	return g.signatureOK
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

type fakeExpiry struct {
	scheduled []string
	err       error
}

func (e *fakeExpiry) ScheduleRelease(_ context.Context, bookingID string) error {
	e.scheduled = append(e.scheduled, bookingID)
	return e.err
}

type sentMail struct {
	to      string
	subject string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, to, subject, _ string) error {
	n.sent = append(n.sent, sentMail{to: to, subject: subject})
	return n.err
}

// testEnv bundles the coordinator with its fakes, seeded with one candidate,
// one verified interviewer and one available slot.
type testEnv struct {
	store    *fakeStore
	uow      *fakeUoW
	gateway  *fakeGateway
	expiry   *fakeExpiry
	notifier *fakeNotifier
	coord    *DefaultCoordinator
}

const (
	testCandidateUserID   = "user-cand-1"
	testCandidateID       = "cand-1"
	testInterviewerUserID = "user-int-1"
	testInterviewerID     = "int-1"
	testSlotID            = "slot-1"
)

func newTestEnv() *testEnv {
	store := newFakeStore()
	store.users[testCandidateUserID] = &models.User{
		ID: testCandidateUserID, Name: "Asha", Email: "asha@example.com", Role: models.RoleCandidate,
	}
	store.users[testInterviewerUserID] = &models.User{
		ID: testInterviewerUserID, Name: "Ravi", Email: "ravi@example.com", Role: models.RoleInterviewer,
	}
	store.candidates[testCandidateID] = &models.Candidate{
		ID: testCandidateID, UserID: testCandidateUserID, ResumeURL: "https://cdn.example.com/resume.pdf",
	}
	store.interviewers[testInterviewerID] = &models.Interviewer{
		ID: testInterviewerID, UserID: testInterviewerUserID,
		VerificationStatus: models.VerificationVerified,
	}
	store.slots[testSlotID] = &models.Slot{
		ID:            testSlotID,
		InterviewerID: testInterviewerID,
		ScheduledDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:30",
		Duration:      60,
		Price:         500,
		Currency:      "INR",
		Status:        models.SlotAvailable,
		Version:       3,
	}

	env := &testEnv{
		store:    store,
		uow:      &fakeUoW{store: store},
		gateway:  newFakeGateway(),
		expiry:   &fakeExpiry{},
		notifier: &fakeNotifier{},
	}
	env.coord = &DefaultCoordinator{
		UoW:          env.uow,
		Slots:        &fakeSlotRepo{store: store},
		Bookings:     &fakeBookingRepo{store: store},
		Payments:     &fakePaymentRepo{store: store},
		Candidates:   &fakeCandidateRepo{store: store},
		Interviewers: &fakeInterviewerRepo{store: store},
		Users:        &fakeUserRepo{store: store},
		Gateway:      env.gateway,
		Expiry:       env.expiry,
		Notifier:     env.notifier,
		Logger:       zap.NewNop(),
	}
	return env
}
