package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"jobconnect/internal/apperrors"
	"jobconnect/internal/models"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

func (s *JobService) CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	job := &models.Job{
		EmployerID:       employerID,
		Title:            req.Title,
		CompanyName:      req.CompanyName,
		Description:      req.Description,
		Location:         req.Location,
		Pay:              req.Pay,
		ContractType:     req.ContractType,
		Skills:           datatypes.JSON(skillsJSON),
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Deadline:         req.Deadline,
		IsActive:         true,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildJobResponse(job)
	return &resp, nil
}

func (s *JobService) GetMyJobs(db *gorm.DB, employerID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, buildJobResponse(&jobs[i]))
	}
	return responses, nil
}

// UpdateJob patches the job when the caller owns it. Ownership mismatch and
// a missing id both come back as not-found.
func (s *JobService) UpdateJob(db *gorm.DB, employerID, jobID string, req *dto.UpdateJobRequest) error {
	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Pay != nil {
		updates["pay"] = *req.Pay
	}
	if req.ContractType != nil {
		updates["contract_type"] = *req.ContractType
	}
	if req.Requirements != nil {
		updates["requirements"] = *req.Requirements
	}
	if req.Responsibilities != nil {
		updates["responsibilities"] = *req.Responsibilities
	}
	if req.Deadline != nil {
		updates["deadline"] = req.Deadline
	}
	if req.Skills != nil {
		skillsJSON, err := json.Marshal(*req.Skills)
		if err != nil {
			return fmt.Errorf("failed to marshal skills: %w", err)
		}
		updates["skills"] = datatypes.JSON(skillsJSON)
	}

	if len(updates) == 0 {
		// Nothing to change; still verify the caller may see the job.
		if _, err := s.jobRepo.FindOwned(db, employerID, jobID); err != nil {
			return mapJobLookupError(err)
		}
		return nil
	}

	if err := s.jobRepo.UpdateOwned(db, employerID, jobID, updates); err != nil {
		return mapJobLookupError(err)
	}
	return nil
}

func (s *JobService) DeleteJob(db *gorm.DB, employerID, jobID string) error {
	if err := s.jobRepo.DeleteOwned(db, employerID, jobID); err != nil {
		return mapJobLookupError(err)
	}
	return nil
}

// StopApplications closes the job for new applications. Idempotent.
func (s *JobService) StopApplications(db *gorm.DB, employerID, jobID string) error {
	if err := s.jobRepo.StopOwned(db, employerID, jobID); err != nil {
		return mapJobLookupError(err)
	}
	return nil
}

func (s *JobService) GetActiveJobs(db *gorm.DB) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, buildJobResponse(&jobs[i]))
	}
	return responses, nil
}

// GetJob is public and returns stopped jobs too: the detail view must keep
// working after applications are closed.
func (s *JobService) GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapJobLookupError(err)
	}

	resp := buildJobResponse(job)
	return &resp, nil
}

func mapJobLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrJobNotFound
	}
	return apperrors.InternalError(err)
}

func buildJobResponse(job *models.Job) dto.JobResponse {
	var skills []string
	if len(job.Skills) > 0 {
		_ = json.Unmarshal(job.Skills, &skills)
	}
	if skills == nil {
		skills = []string{}
	}

	return dto.JobResponse{
		ID:               job.ID,
		EmployerID:       job.EmployerID,
		Title:            job.Title,
		CompanyName:      job.CompanyName,
		Description:      job.Description,
		Location:         job.Location,
		Pay:              job.Pay,
		ContractType:     job.ContractType,
		Skills:           skills,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Deadline:         job.Deadline,
		IsActive:         job.IsActive,
		CreatedAt:        job.CreatedAt,
	}
}
