package repositories

import (
	"jobconnect/internal/models"

	"gorm.io/gorm"
)

type SavedJobRepository struct{}

func NewSavedJobRepository() SavedJobRepository {
	return SavedJobRepository{}
}

func (r SavedJobRepository) Find(db *gorm.DB, jobseekerID, jobID string) (*models.SavedJob, error) {
	var saved models.SavedJob
	err := db.First(&saved, "jobseeker_id = ? AND job_id = ?", jobseekerID, jobID).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r SavedJobRepository) Create(db *gorm.DB, saved *models.SavedJob) error {
	if err := db.Create(saved).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r SavedJobRepository) Delete(db *gorm.DB, jobseekerID, jobID string) error {
	return db.Where("jobseeker_id = ? AND job_id = ?", jobseekerID, jobID).Delete(&models.SavedJob{}).Error
}

// FindByJobseeker joins the job snapshot; Job is nil for dangling refs.
func (r SavedJobRepository) FindByJobseeker(db *gorm.DB, jobseekerID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := db.Preload("Job").
		Where("jobseeker_id = ?", jobseekerID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
