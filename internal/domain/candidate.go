package domain

import "time"

// Estados del pipeline de un candidato.
const (
	CandidateStatusPending  = "pending"
	CandidateStatusApproved = "approved"
	CandidateStatusRejected = "rejected"
)

type Candidate struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Position          string    `json:"position"`
	LinkedinURL       string    `json:"linkedinUrl,omitempty"`
	Feedback          string    `json:"feedback,omitempty"`
	Status            string    `json:"status"`
	RecruiterName     string    `json:"recruiterName"`
	TechnicalLeadName string    `json:"technicalLeadName"`
	TechnicalLeadID   string    `json:"technicalLeadId,omitempty"`
	SubmittedAt       time.Time `json:"submittedAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
