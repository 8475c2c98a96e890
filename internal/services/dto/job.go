package dto

import "time"

type CreateJobRequest struct {
	Title            string     `json:"title" binding:"required"`
	CompanyName      string     `json:"companyName"`
	Description      string     `json:"description"`
	Location         string     `json:"location"`
	Pay              string     `json:"pay"`
	ContractType     string     `json:"contractType"`
	Skills           []string   `json:"skills"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Deadline         *time.Time `json:"deadline"`
}

// UpdateJobRequest patches only the fields present in the request body.
type UpdateJobRequest struct {
	Title            *string    `json:"title"`
	CompanyName      *string    `json:"companyName"`
	Description      *string    `json:"description"`
	Location         *string    `json:"location"`
	Pay              *string    `json:"pay"`
	ContractType     *string    `json:"contractType"`
	Skills           *[]string  `json:"skills"`
	Requirements     *string    `json:"requirements"`
	Responsibilities *string    `json:"responsibilities"`
	Deadline         *time.Time `json:"deadline"`
}

type JobResponse struct {
	ID               string     `json:"id"`
	EmployerID       string     `json:"employerId"`
	Title            string     `json:"title"`
	CompanyName      string     `json:"companyName"`
	Description      string     `json:"description"`
	Location         string     `json:"location"`
	Pay              string     `json:"pay"`
	ContractType     string     `json:"contractType"`
	Skills           []string   `json:"skills"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
}
