package services

import (
	"errors"

	"jobconnect/internal/algorithms"
	"jobconnect/internal/apperrors"
	"jobconnect/internal/email"
	"jobconnect/internal/logger"
	"jobconnect/internal/models"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"gorm.io/gorm"
)

type ApplicationService struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	email    email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) *ApplicationService {
	return &ApplicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		email:    emailProvider,
	}
}

// Apply creates an application with status=applied. The job must exist and
// still accept applications; one application per (job, applicant) pair.
func (s *ApplicationService) Apply(db *gorm.DB, applicantID, jobID string, req *dto.ApplyRequest, cvFilename string) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapJobLookupError(err)
	}

	if !job.IsActive {
		return nil, apperrors.ErrJobNotActive
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Role:        req.Role,
		Experience:  req.Experience,
		Status:      models.ApplicationStatusApplied,
		CV:          cvFilename,
	}

	if err := s.appRepo.Create(db, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

// ListApplicants returns the ranked, filtered applicant view for a job the
// caller owns. The ranking runs server-side over the job's full application
// set, then the requested page is cut from the ranked slice.
func (s *ApplicationService) ListApplicants(db *gorm.DB, employerID, jobID string, query *dto.ListApplicantsQuery, page, pageSize int) ([]dto.ApplicantSummary, int, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, 0, mapJobLookupError(err)
	}
	if job.EmployerID != employerID {
		// Same answer as a missing job: do not reveal existence to non-owners.
		return nil, 0, apperrors.ErrJobNotFound
	}

	apps, err := s.appRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	ranked := algorithms.RankApplicants(apps, query.Role, models.ApplicationStatus(query.Status), query.SortBy)
	total := len(ranked)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	ranked = ranked[start:end]

	summaries := make([]dto.ApplicantSummary, 0, len(ranked))
	for i := range ranked {
		summaries = append(summaries, buildApplicantSummary(&ranked[i]))
	}
	return summaries, total, nil
}

// MyApplications lists the caller's applications joined with their job
// snapshots. Applications whose job has been deleted are dropped from the
// result: the dangling reference must never reach the client.
func (s *ApplicationService) MyApplications(db *gorm.DB, applicantID string) ([]dto.MyApplicationResponse, error) {
	apps, err := s.appRepo.FindByApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MyApplicationResponse, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		if app.Job == nil {
			continue
		}
		responses = append(responses, dto.MyApplicationResponse{
			ID:         app.ID,
			Role:       app.Role,
			Experience: app.Experience,
			Status:     string(app.Status),
			CV:         app.CV,
			CreatedAt:  app.CreatedAt,
			Job:        buildJobResponse(app.Job),
		})
	}
	return responses, nil
}

// UpdateStatus moves an application to a new workflow status. Only the
// employer owning the parent job may do this; there is no transition graph,
// any of the three values may follow any other.
func (s *ApplicationService) UpdateStatus(db *gorm.DB, employerID, appID string, newStatus string) error {
	status := models.ApplicationStatus(newStatus)
	if !models.ValidApplicationStatus(status) {
		return apperrors.ErrInvalidStatusValue
	}

	app, job, err := s.findOwnedApplication(db, employerID, appID)
	if err != nil {
		return err
	}

	oldStatus := app.Status
	if err := s.appRepo.UpdateStatus(db, appID, status); err != nil {
		return apperrors.InternalError(err)
	}

	if oldStatus != status {
		go s.notifyStatusChange(db, app, job, status)
	}

	return nil
}

// UpdateNote overwrites the employer-private note on an application.
func (s *ApplicationService) UpdateNote(db *gorm.DB, employerID, appID, note string) error {
	if _, _, err := s.findOwnedApplication(db, employerID, appID); err != nil {
		return err
	}

	if err := s.appRepo.UpdateNote(db, appID, note); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwnedApplication resolves the application and its parent job, then
// checks the caller owns that job. Missing application, deleted job, and
// ownership mismatch all report the same not-found.
func (s *ApplicationService) findOwnedApplication(db *gorm.DB, employerID, appID string) (*models.Application, *models.Job, error) {
	app, err := s.appRepo.FindByID(db, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrApplicationNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(db, app.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrApplicationNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if job.EmployerID != employerID {
		return nil, nil, apperrors.ErrApplicationNotFound
	}

	return app, job, nil
}

func (s *ApplicationService) notifyStatusChange(db *gorm.DB, app *models.Application, job *models.Job, status models.ApplicationStatus) {
	if s.email == nil {
		return
	}

	applicant, err := s.userRepo.FindByID(db, app.ApplicantID)
	if err != nil {
		logger.Warn("status email skipped: applicant lookup failed", "application_id", app.ID, "error", err)
		return
	}

	subject, body := email.StatusChangedBody(applicant.Name, job.Title, string(status))
	if err := s.email.Send(applicant.Email, subject, body); err != nil {
		logger.Warn("status email delivery failed", "to", applicant.Email, "error", err)
	}
}

func buildApplicantSummary(app *models.Application) dto.ApplicantSummary {
	summary := dto.ApplicantSummary{
		ID:         app.ID,
		Role:       app.Role,
		Experience: app.Experience,
		Status:     string(app.Status),
		Note:       app.Note,
		CV:         app.CV,
		CreatedAt:  app.CreatedAt,
	}
	if app.Applicant != nil {
		summary.ApplicantName = app.Applicant.Name
		summary.ApplicantEmail = app.Applicant.Email
	}
	return summary
}
