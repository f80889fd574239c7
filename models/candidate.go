package models

import "time"

// Candidate is the interview-seeker profile attached to a user account.
type Candidate struct {
	ID                 string    `bson:"id" json:"id"`
	UserID             string    `bson:"userId" json:"userId"`
	ResumeURL          string    `bson:"resumeUrl" json:"resumeUrl"`
	Skills             []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience         int       `bson:"experience" json:"experience"` // years
	RazorpayCustomerID string    `bson:"razorpayCustomerId,omitempty" json:"-"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfileComplete reports whether the candidate may book interviews. A
// profile without an uploaded resume is treated as incomplete.
func (c *Candidate) ProfileComplete() bool {
	return c != nil && c.ResumeURL != ""
}
