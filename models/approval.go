package models

import "time"

// ApprovalStatus enumerates verification request states. approved and
// rejected are terminal.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ApprovalRequest is an interviewer's request to have their profile verified
// by an admin.
type ApprovalRequest struct {
	ID            string         `bson:"id" json:"id"`
	InterviewerID string         `bson:"interviewerId" json:"interviewerId"`
	RequestedDate time.Time      `bson:"requestedDate" json:"requestedDate"`
	Status        ApprovalStatus `bson:"status" json:"status"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}
