package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	EmployerID       string `gorm:"not null;index"` // immutable owner, set at creation
	Title            string `gorm:"not null"`
	CompanyName      string
	Description      string
	Location         string
	Pay              string
	ContractType     string
	Skills           datatypes.JSON `gorm:"type:jsonb"` // ordered list of strings
	Requirements     string
	Responsibilities string
	Deadline         *time.Time
	IsActive         bool `gorm:"default:true"` // flipped to false by stop-applications, never back
}
