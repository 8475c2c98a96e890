package handlers

import (
	"net/http"

	"jobconnect/internal/middleware"
	"jobconnect/internal/models"
	"jobconnect/internal/services"

	"github.com/gin-gonic/gin"
)

type JobseekerHandler struct {
	*BaseHandler
	jobseekerService *services.JobseekerService
}

func NewJobseekerHandler(base *BaseHandler, jobseekerService *services.JobseekerService) *JobseekerHandler {
	return &JobseekerHandler{
		BaseHandler:      base,
		jobseekerService: jobseekerService,
	}
}

func (h *JobseekerHandler) RegisterRoutes(r *gin.RouterGroup) {
	seeker := r.Group("/jobseeker")
	seeker.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobseeker))
	{
		seeker.POST("/saved-jobs/:jobId", h.ToggleSaveJob)
		seeker.GET("/saved-jobs", h.GetSavedJobs)
	}
}

func (h *JobseekerHandler) ToggleSaveJob(c *gin.Context) {
	jobseekerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.jobseekerService.ToggleSaveJob(h.GetDB(c), jobseekerID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *JobseekerHandler) GetSavedJobs(c *gin.Context) {
	jobseekerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	savedJobs, err := h.jobseekerService.GetSavedJobs(h.GetDB(c), jobseekerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"savedJobs": savedJobs,
		"total":     len(savedJobs),
	})
}
