package dto

import "time"

type SavedJobResponse struct {
	ID      string      `json:"id"`
	SavedAt time.Time   `json:"savedAt"`
	Job     JobResponse `json:"job"`
}
