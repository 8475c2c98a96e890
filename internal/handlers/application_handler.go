package handlers

import (
	"net/http"

	"jobconnect/internal/middleware"
	"jobconnect/internal/models"
	"jobconnect/internal/services"
	"jobconnect/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Jobseeker routes
	seeker := r.Group("/applications")
	seeker.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobseeker))
	{
		seeker.POST("/:jobId", h.Apply)
		seeker.GET("/my", h.GetMyApplications)
	}

	// Employer routes
	employer := r.Group("/applications")
	employer.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
	{
		employer.GET("/:jobId", h.GetApplicants)
		employer.PATCH("/status/:appId", h.UpdateStatus)
		employer.PATCH("/note/:appId", h.UpdateNote)
	}
}

// Apply accepts multipart form data: role and experience fields plus an
// optional CV document.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cvFilename := ""
	if fileHeader, err := c.FormFile("cv"); err == nil {
		filename, err := h.saveDocument(c.Request.Context(), fileHeader, "cv")
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		cvFilename = filename
	}

	app, err := h.appService.Apply(h.GetDB(c), applicantID, c.Param("jobId"), &req, cvFilename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     app.ID,
		"status": string(app.Status),
	})
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.MyApplications(h.GetDB(c), applicantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// GetApplicants returns the ranked applicant list for a job the caller owns.
// Filtering and sorting run server-side; the page is cut from the ranked set.
func (h *ApplicationHandler) GetApplicants(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListApplicantsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	applicants, total, err := h.appService.ListApplicants(h.GetDB(c), employerID, c.Param("jobId"), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applicants": applicants,
		"total":      total,
		"page":       page,
		"pages":      (total + pageSize - 1) / pageSize,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.appService.UpdateStatus(h.GetDB(c), employerID, c.Param("appId"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *ApplicationHandler) UpdateNote(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.appService.UpdateNote(h.GetDB(c), employerID, c.Param("appId"), req.Note); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note saved"})
}
