package repositories

import (
	"jobconnect/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return ApplicationRepository{}
}

// Create inserts the application; the composite unique index on
// (job_id, applicant_id) surfaces as ErrDuplicateKey.
func (r ApplicationRepository) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r ApplicationRepository) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByJob returns every application for the job with the applicant joined
// for display and name sorting.
func (r ApplicationRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

// FindByApplicant joins the job snapshot. Job stays nil when the referenced
// job has been deleted; the caller filters those out.
func (r ApplicationRepository) FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r ApplicationRepository) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	return db.Model(&models.Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r ApplicationRepository) UpdateNote(db *gorm.DB, id string, note string) error {
	return db.Model(&models.Application{}).Where("id = ?", id).Update("note", note).Error
}
