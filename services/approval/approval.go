package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	approvalRepo "mockview/database/repository/approval"
	interviewerRepo "mockview/database/repository/interviewer"
	txnRepo "mockview/database/repository/txn"
	userRepo "mockview/database/repository/user"
	"mockview/models"
	"mockview/services/notification"
)

// DefaultService is the production approval workflow.
type DefaultService struct {
	UoW          txnRepo.UnitOfWork
	Requests     approvalRepo.Repository
	Interviewers interviewerRepo.Repository
	Users        userRepo.Repository
	Notifier     notification.Service
	Logger       *zap.Logger
}

func (s *DefaultService) Submit(ctx context.Context, interviewerUserID string) (*models.ApprovalRequest, error) {
	interviewer, err := s.Interviewers.FindByUserID(ctx, interviewerUserID)
	if errors.Is(err, interviewerRepo.ErrNotFound) {
		return nil, newError(CodeNotFound, "interviewer profile not found")
	}
	if err != nil {
		return nil, newError(CodeApprovalFailed, "interviewer lookup failed: %v", err)
	}
	if interviewer.VerificationStatus == models.VerificationVerified {
		return nil, newError(CodeAlreadyVerified, "interviewer profile is already verified")
	}

	if _, err := s.Requests.FindPendingByInterviewer(ctx, interviewer.ID); err == nil {
		return nil, newError(CodeRequestPending, "a verification request is already pending for this profile")
	} else if !errors.Is(err, approvalRepo.ErrNotFound) {
		return nil, newError(CodeApprovalFailed, "pending request lookup failed: %v", err)
	}

	req := &models.ApprovalRequest{
		ID:            uuid.New().String(),
		InterviewerID: interviewer.ID,
		RequestedDate: time.Now(),
		Status:        models.ApprovalPending,
	}
	if err := s.Requests.Create(ctx, req); err != nil {
		return nil, newError(CodeApprovalFailed, "could not file verification request: %v", err)
	}

	s.Logger.Info("verification request submitted",
		zap.String("requestId", req.ID),
		zap.String("interviewerId", interviewer.ID),
	)
	return req, nil
}

func (s *DefaultService) Approve(ctx context.Context, requestID string) error {
	return s.process(ctx, requestID, models.ApprovalApproved, models.VerificationVerified)
}

func (s *DefaultService) Reject(ctx context.Context, requestID string) error {
	return s.process(ctx, requestID, models.ApprovalRejected, models.VerificationRejected)
}

// process runs the guarded transition: request status and interviewer
// verification flag change together or not at all. Notification happens
// after commit and cannot roll the decision back.
func (s *DefaultService) process(ctx context.Context, requestID string, to models.ApprovalStatus, verification models.VerificationStatus) error {
	req, err := s.Requests.GetByID(ctx, requestID)
	if errors.Is(err, approvalRepo.ErrNotFound) {
		return newError(CodeNotFound, "approval request not found")
	}
	if err != nil {
		return newError(CodeApprovalFailed, "approval request lookup failed: %v", err)
	}
	if req.Status != models.ApprovalPending {
		return newError(CodeAlreadyProcessed, "request was already %s", req.Status)
	}

	txErr := s.UoW.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.Requests.Transition(txCtx, requestID, to); err != nil {
			return err
		}
		return s.Interviewers.SetVerificationStatus(txCtx, req.InterviewerID, verification)
	})
	if txErr != nil {
		if errors.Is(txErr, approvalRepo.ErrInvalidTransition) {
			return newError(CodeAlreadyProcessed, "request was processed concurrently")
		}
		return newError(CodeApprovalFailed, "approval did not commit: %v", txErr)
	}

	s.Logger.Info("approval request processed",
		zap.String("requestId", requestID),
		zap.String("status", string(to)),
	)

	s.notifyDecision(ctx, req.InterviewerID, to)
	return nil
}

func (s *DefaultService) notifyDecision(ctx context.Context, interviewerID string, decision models.ApprovalStatus) {
	if s.Notifier == nil {
		return
	}

	interviewer, err := s.Interviewers.GetByID(ctx, interviewerID)
	if err != nil {
		s.Logger.Warn("skipping decision email, interviewer lookup failed",
			zap.String("interviewerId", interviewerID), zap.Error(err))
		return
	}
	user, err := s.Users.GetByID(ctx, interviewer.UserID)
	if err != nil {
		s.Logger.Warn("skipping decision email, user lookup failed",
			zap.String("userId", interviewer.UserID), zap.Error(err))
		return
	}

	subject := "Your interviewer profile has been verified"
	body := fmt.Sprintf("Hello %s,\n\nYour verification request has been approved. Your profile is now visible to candidates.", user.Name)
	if decision == models.ApprovalRejected {
		subject = "Your interviewer verification request was rejected"
		body = fmt.Sprintf("Hello %s,\n\nYour verification request has been rejected. If you believe this was a mistake, please contact support.", user.Name)
	}

	if err := s.Notifier.Send(ctx, user.Email, subject, body); err != nil {
		s.Logger.Warn("decision email failed",
			zap.String("userId", user.ID), zap.Error(err))
	}
}
