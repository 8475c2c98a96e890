package dto

import "time"

type ApplyRequest struct {
	Role       string `form:"role" binding:"required"`
	Experience string `form:"experience" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// ListApplicantsQuery mirrors the filters the view-applicants screen sends.
type ListApplicantsQuery struct {
	Role   string `form:"role"`
	Status string `form:"status" validate:"omitempty,oneof=applied shortlisted rejected"`
	SortBy string `form:"sort_by"`
}

type ApplicantSummary struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Experience string    `json:"experience"`
	Status     string    `json:"status"`
	Note       string    `json:"note"`
	CV         string    `json:"cv,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
}

// MyApplicationResponse is the jobseeker-side view: the application joined
// with a snapshot of its job.
type MyApplicationResponse struct {
	ID         string      `json:"id"`
	Role       string      `json:"role"`
	Experience string      `json:"experience"`
	Status     string      `json:"status"`
	CV         string      `json:"cv,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	Job        JobResponse `json:"job"`
}
