package models

type SavedJob struct {
	BaseModel
	JobseekerID string `gorm:"not null;index;uniqueIndex:idx_seeker_job"`
	JobID       string `gorm:"not null;uniqueIndex:idx_seeker_job"`

	Job *Job `gorm:"foreignKey:JobID"`
}
