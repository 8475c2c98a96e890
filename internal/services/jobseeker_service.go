package services

import (
	"errors"

	"jobconnect/internal/apperrors"
	"jobconnect/internal/models"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"gorm.io/gorm"
)

type JobseekerService struct {
	savedRepo repositories.SavedJobRepository
	jobRepo   repositories.JobRepository
}

func NewJobseekerService(savedRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) *JobseekerService {
	return &JobseekerService{
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
	}
}

// ToggleSaveJob saves the job for the jobseeker, or removes the bookmark when
// it already exists. Returns whether the job is saved after the call.
func (s *JobseekerService) ToggleSaveJob(db *gorm.DB, jobseekerID, jobID string) (saved bool, err error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		return false, mapJobLookupError(err)
	}

	_, err = s.savedRepo.Find(db, jobseekerID, jobID)
	switch {
	case err == nil:
		if err := s.savedRepo.Delete(db, jobseekerID, jobID); err != nil {
			return false, apperrors.InternalError(err)
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		create := s.savedRepo.Create(db, &models.SavedJob{
			JobseekerID: jobseekerID,
			JobID:       jobID,
		})
		// A concurrent toggle may have inserted the row already.
		if create != nil && !errors.Is(create, repositories.ErrDuplicateKey) {
			return false, apperrors.InternalError(create)
		}
		return true, nil
	default:
		return false, apperrors.InternalError(err)
	}
}

// GetSavedJobs lists the jobseeker's bookmarks with job snapshots. Bookmarks
// whose job has been deleted are dropped.
func (s *JobseekerService) GetSavedJobs(db *gorm.DB, jobseekerID string) ([]dto.SavedJobResponse, error) {
	saved, err := s.savedRepo.FindByJobseeker(db, jobseekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		entry := &saved[i]
		if entry.Job == nil {
			continue
		}
		responses = append(responses, dto.SavedJobResponse{
			ID:      entry.ID,
			SavedAt: entry.CreatedAt,
			Job:     buildJobResponse(entry.Job),
		})
	}
	return responses, nil
}
