package repositories

import (
	"jobconnect/internal/models"

	"gorm.io/gorm"
)

type JobRepository struct{}

func NewJobRepository() JobRepository {
	return JobRepository{}
}

func (r JobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r JobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r JobRepository) FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r JobRepository) FindActive(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("is_active = ?", true).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// FindOwned fetches the job only when the caller owns it.
func (r JobRepository) FindOwned(db *gorm.DB, employerID, jobID string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ? AND employer_id = ?", jobID, employerID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateOwned applies the patch to the job only when the caller owns it.
// The owner predicate sits inside the WHERE clause, so a non-owner gets the
// same ErrRecordNotFound as a missing id and cannot probe for existence.
func (r JobRepository) UpdateOwned(db *gorm.DB, employerID, jobID string, updates map[string]interface{}) error {
	res := db.Model(&models.Job{}).
		Where("id = ? AND employer_id = ?", jobID, employerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned removes the job with the same owner-scoped predicate.
// Applications referencing the job are left in place (weak reference).
func (r JobRepository) DeleteOwned(db *gorm.DB, employerID, jobID string) error {
	res := db.Where("id = ? AND employer_id = ?", jobID, employerID).Delete(&models.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// StopOwned flips is_active to false. Calling it on an already stopped job
// is a no-op, not an error, so the operation stays idempotent.
func (r JobRepository) StopOwned(db *gorm.DB, employerID, jobID string) error {
	var job models.Job
	if err := db.First(&job, "id = ? AND employer_id = ?", jobID, employerID).Error; err != nil {
		return err
	}
	if !job.IsActive {
		return nil
	}
	return db.Model(&job).Update("is_active", false).Error
}
