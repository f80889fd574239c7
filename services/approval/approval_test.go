package approval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	approvalRepo "mockview/database/repository/approval"
	interviewerRepo "mockview/database/repository/interviewer"
	"mockview/models"
)

type fakeState struct {
	requests     map[string]*models.ApprovalRequest
	interviewers map[string]*models.Interviewer
	users        map[string]*models.User
}

type fakeUoW struct {
	state      *fakeState
	failCommit bool
}

func (u *fakeUoW) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	reqSnap := map[string]*models.ApprovalRequest{}
	for id, v := range u.state.requests {
		c := *v
		reqSnap[id] = &c
	}
	intSnap := map[string]*models.Interviewer{}
	for id, v := range u.state.interviewers {
		c := *v
		intSnap[id] = &c
	}
	restore := func() {
		u.state.requests = reqSnap
		u.state.interviewers = intSnap
	}
	if err := fn(ctx); err != nil {
		restore()
		return err
	}
	if u.failCommit {
		restore()
		return errors.New("transaction commit aborted")
	}
	return nil
}

type fakeRequestRepo struct{ state *fakeState }

func (r *fakeRequestRepo) Create(_ context.Context, req *models.ApprovalRequest) error {
	c := *req
	r.state.requests[req.ID] = &c
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (*models.ApprovalRequest, error) {
	req, ok := r.state.requests[id]
	if !ok {
		return nil, approvalRepo.ErrNotFound
	}
	c := *req
	return &c, nil
}

func (r *fakeRequestRepo) FindPendingByInterviewer(_ context.Context, interviewerID string) (*models.ApprovalRequest, error) {
	for _, req := range r.state.requests {
		if req.InterviewerID == interviewerID && req.Status == models.ApprovalPending {
			c := *req
			return &c, nil
		}
	}
	return nil, approvalRepo.ErrNotFound
}

func (r *fakeRequestRepo) Transition(_ context.Context, requestID string, to models.ApprovalStatus) error {
	req, ok := r.state.requests[requestID]
	if !ok || req.Status != models.ApprovalPending {
		return approvalRepo.ErrInvalidTransition
	}
	req.Status = to
	return nil
}

func (r *fakeRequestRepo) EnsureIndexes() error { return nil }

type fakeInterviewerRepo struct{ state *fakeState }

func (r *fakeInterviewerRepo) GetByID(_ context.Context, id string) (*models.Interviewer, error) {
	interviewer, ok := r.state.interviewers[id]
	if !ok {
		return nil, interviewerRepo.ErrNotFound
	}
	c := *interviewer
	return &c, nil
}

func (r *fakeInterviewerRepo) FindByUserID(_ context.Context, userID string) (*models.Interviewer, error) {
	for _, interviewer := range r.state.interviewers {
		if interviewer.UserID == userID {
			c := *interviewer
			return &c, nil
		}
	}
	return nil, interviewerRepo.ErrNotFound
}

func (r *fakeInterviewerRepo) SetVerificationStatus(_ context.Context, id string, status models.VerificationStatus) error {
	interviewer, ok := r.state.interviewers[id]
	if !ok {
		return interviewerRepo.ErrNotFound
	}
	interviewer.VerificationStatus = status
	return nil
}

func (r *fakeInterviewerRepo) CreditBalance(_ context.Context, id string, amount float64) error {
	interviewer, ok := r.state.interviewers[id]
	if !ok {
		return interviewerRepo.ErrNotFound
	}
	interviewer.TotalBalance += amount
	return nil
}

func (r *fakeInterviewerRepo) EnsureIndexes() error { return nil }

type fakeUserRepo struct{ state *fakeState }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.state.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	c := *user
	return &c, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.state.users {
		if user.Email == email {
			c := *user
			return &c, nil
		}
	}
	return nil, errors.New("user not found")
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, to, _, _ string) error {
	n.sent = append(n.sent, to)
	return n.err
}

type approvalEnv struct {
	state    *fakeState
	uow      *fakeUoW
	notifier *fakeNotifier
	service  *DefaultService
}

func newApprovalEnv() *approvalEnv {
	state := &fakeState{
		requests:     map[string]*models.ApprovalRequest{},
		interviewers: map[string]*models.Interviewer{},
		users:        map[string]*models.User{},
	}
	state.users["user-int-1"] = &models.User{ID: "user-int-1", Name: "Ravi", Email: "ravi@example.com", Role: models.RoleInterviewer}
	state.interviewers["int-1"] = &models.Interviewer{
		ID: "int-1", UserID: "user-int-1",
		VerificationStatus: models.VerificationPending,
	}

	env := &approvalEnv{
		state:    state,
		uow:      &fakeUoW{state: state},
		notifier: &fakeNotifier{},
	}
	env.service = &DefaultService{
		UoW:          env.uow,
		Requests:     &fakeRequestRepo{state: state},
		Interviewers: &fakeInterviewerRepo{state: state},
		Users:        &fakeUserRepo{state: state},
		Notifier:     env.notifier,
		Logger:       zap.NewNop(),
	}
	return env
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	env := newApprovalEnv()

	req, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)
	require.NotEmpty(t, req.ID)
	assert.Equal(t, "int-1", req.InterviewerID)
	assert.Equal(t, models.ApprovalPending, req.Status)
	require.Contains(t, env.state.requests, req.ID)
}

func TestSubmitRejectsUnknownProfile(t *testing.T) {
	env := newApprovalEnv()

	_, err := env.service.Submit(context.Background(), "user-unknown")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestSubmitRejectsVerifiedProfile(t *testing.T) {
	env := newApprovalEnv()
	env.state.interviewers["int-1"].VerificationStatus = models.VerificationVerified

	_, err := env.service.Submit(context.Background(), "user-int-1")
	assert.Equal(t, CodeAlreadyVerified, CodeOf(err))
}

func TestSubmitRejectsDuplicatePendingRequest(t *testing.T) {
	env := newApprovalEnv()
	_, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)

	_, err = env.service.Submit(context.Background(), "user-int-1")
	assert.Equal(t, CodeRequestPending, CodeOf(err))
	assert.Len(t, env.state.requests, 1)
}

func TestApproveVerifiesInterviewer(t *testing.T) {
	env := newApprovalEnv()
	req, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)

	require.NoError(t, env.service.Approve(context.Background(), req.ID))

	assert.Equal(t, models.ApprovalApproved, env.state.requests[req.ID].Status)
	assert.Equal(t, models.VerificationVerified, env.state.interviewers["int-1"].VerificationStatus)
	assert.Equal(t, []string{"ravi@example.com"}, env.notifier.sent)
}

func TestRejectMarksInterviewerRejected(t *testing.T) {
	env := newApprovalEnv()
	req, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)

	require.NoError(t, env.service.Reject(context.Background(), req.ID))

	assert.Equal(t, models.ApprovalRejected, env.state.requests[req.ID].Status)
	assert.Equal(t, models.VerificationRejected, env.state.interviewers["int-1"].VerificationStatus)
}

func TestApproveUnknownRequest(t *testing.T) {
	env := newApprovalEnv()

	err := env.service.Approve(context.Background(), "req-missing")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestApproveTwiceIsRejected(t *testing.T) {
	env := newApprovalEnv()
	req, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)
	require.NoError(t, env.service.Approve(context.Background(), req.ID))

	err = env.service.Approve(context.Background(), req.ID)
	assert.Equal(t, CodeAlreadyProcessed, CodeOf(err))

	err = env.service.Reject(context.Background(), req.ID)
	assert.Equal(t, CodeAlreadyProcessed, CodeOf(err))
	assert.Equal(t, models.VerificationVerified, env.state.interviewers["int-1"].VerificationStatus, "decision stays")
}

func TestApproveCommitFailureKeepsRequestPending(t *testing.T) {
	env := newApprovalEnv()
	req, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)
	env.uow.failCommit = true

	err = env.service.Approve(context.Background(), req.ID)
	assert.Equal(t, CodeApprovalFailed, CodeOf(err))
	assert.Equal(t, models.ApprovalPending, env.state.requests[req.ID].Status)
	assert.Equal(t, models.VerificationPending, env.state.interviewers["int-1"].VerificationStatus)
	assert.Empty(t, env.notifier.sent)
}

func TestApproveNotifyFailureIsNotFatal(t *testing.T) {
	env := newApprovalEnv()
	req, err := env.service.Submit(context.Background(), "user-int-1")
	require.NoError(t, err)
	env.notifier.err = assert.AnError

	require.NoError(t, env.service.Approve(context.Background(), req.ID))
	assert.Equal(t, models.ApprovalApproved, env.state.requests[req.ID].Status)
}
