package handlers

import (
	"net/http"

	"jobconnect/internal/middleware"
	"jobconnect/internal/models"
	"jobconnect/internal/services"
	"jobconnect/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService *services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/blogs")
	{
		public.GET("", h.ListBlogs)
		public.GET("/:blogId", h.GetBlog)
	}

	// Authoring - employer only
	authoring := r.Group("/blogs")
	authoring.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
	{
		authoring.POST("", h.CreateBlog)
	}

	// Engagement - any authenticated user
	engagement := r.Group("/blogs")
	engagement.Use(middleware.AuthMiddleware())
	{
		engagement.POST("/:blogId/like", h.ToggleLike)
		engagement.POST("/:blogId/comment", h.AddComment)
	}
}

// CreateBlog accepts multipart form data: title and content fields plus
// optional image files. Images are downscaled before storage.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	authorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBlogRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	var imageFilenames []string
	if form, err := c.MultipartForm(); err == nil {
		for _, fileHeader := range form.File["images"] {
			filename, err := h.saveImage(c.Request.Context(), fileHeader)
			if err != nil {
				h.HandleServiceError(c, err)
				return
			}
			imageFilenames = append(imageFilenames, filename)
		}
	}

	blog, err := h.blogService.CreateBlog(h.GetDB(c), authorID, &req, imageFilenames)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs": blogs,
		"total": len(blogs),
	})
}

func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogService.GetBlog(h.GetDB(c), c.Param("blogId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	liked, err := h.blogService.ToggleLike(h.GetDB(c), userID, c.Param("blogId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.blogService.AddComment(h.GetDB(c), userID, c.Param("blogId"), req.Text)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
