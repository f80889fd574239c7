package models

import "time"

// VerificationStatus enumerates interviewer verification states.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Interviewer is the profile of a user offering paid mock interviews.
type Interviewer struct {
	ID                  string             `bson:"id" json:"id"`
	UserID              string             `bson:"userId" json:"userId"`
	Bio                 string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Companies           []string           `bson:"companies" json:"companies"`
	Expertise           []string           `bson:"expertise" json:"expertise"`
	Experience          int                `bson:"experience" json:"experience"` // years
	Rating              float64            `bson:"rating" json:"rating"`
	TotalBalance        float64            `bson:"totalBalance" json:"totalBalance"`
	VerificationStatus  VerificationStatus `bson:"verificationStatus" json:"verificationStatus"`
	LinkedinProfile     string             `bson:"linkedinProfile" json:"linkedinProfile"`
	EmployeeMailID      string             `bson:"employeeMailId" json:"employeeMailId"`
	RazorpayRecipientID string             `bson:"razorpayRecipientId,omitempty" json:"-"`
	PayoutsEnabled      bool               `bson:"payoutsEnabled" json:"payoutsEnabled"`
	MeetLink            string             `bson:"meetLink,omitempty" json:"meetLink,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
