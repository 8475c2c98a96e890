package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobconnect/internal/apperrors"
	"jobconnect/internal/models"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BlogService struct {
	blogRepo repositories.BlogRepository
	userRepo repositories.UserRepository
}

func NewBlogService(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		userRepo: userRepo,
	}
}

func (s *BlogService) CreateBlog(db *gorm.DB, authorID string, req *dto.CreateBlogRequest, imageFilenames []string) (*dto.BlogResponse, error) {
	if imageFilenames == nil {
		imageFilenames = []string{}
	}
	imagesJSON, err := json.Marshal(imageFilenames)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal images: %w", err)
	}

	blog := &models.Blog{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		Images:   datatypes.JSON(imagesJSON),
		Likes:    datatypes.JSON([]byte("[]")),
	}

	if err := s.blogRepo.Create(db, blog); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := buildBlogResponse(blog)
	return &resp, nil
}

func (s *BlogService) ListBlogs(db *gorm.DB) ([]dto.BlogResponse, error) {
	blogs, err := s.blogRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, buildBlogResponse(&blogs[i]))
	}
	return responses, nil
}

func (s *BlogService) GetBlog(db *gorm.DB, blogID string) (*dto.BlogResponse, error) {
	blog, err := s.findBlog(db, blogID)
	if err != nil {
		return nil, err
	}

	resp := buildBlogResponse(blog)
	return &resp, nil
}

// ToggleLike adds the user to the likes set, or removes them when already
// present. Repeating the call flips the state back, so per-state it is
// idempotent.
func (s *BlogService) ToggleLike(db *gorm.DB, userID, blogID string) (liked bool, err error) {
	blog, err := s.findBlog(db, blogID)
	if err != nil {
		return false, err
	}

	likes := unmarshalStrings(blog.Likes)

	found := false
	next := make([]string, 0, len(likes)+1)
	for _, id := range likes {
		if id == userID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, userID)
	}

	likesJSON, err := json.Marshal(next)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	blog.Likes = datatypes.JSON(likesJSON)

	if err := s.blogRepo.UpdateLikes(db, blog); err != nil {
		return false, apperrors.InternalError(err)
	}
	return !found, nil
}

// AddComment appends a comment. Blank and whitespace-only text is rejected.
func (s *BlogService) AddComment(db *gorm.DB, userID, blogID, text string) (*dto.BlogComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyComment
	}

	blog, err := s.findBlog(db, blogID)
	if err != nil {
		return nil, err
	}

	authorName := ""
	if user, err := s.userRepo.FindByID(db, userID); err == nil {
		authorName = user.Name
	}

	comment := &models.BlogComment{
		BlogID:     blog.ID,
		UserID:     userID,
		AuthorName: authorName,
		Text:       text,
	}

	if err := s.blogRepo.AddComment(db, comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.BlogComment{
		ID:         comment.ID,
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
		CreatedAt:  comment.CreatedAt,
	}, nil
}

func (s *BlogService) findBlog(db *gorm.DB, blogID string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(db, blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func unmarshalStrings(raw datatypes.JSON) []string {
	var values []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	if values == nil {
		values = []string{}
	}
	return values
}

func buildBlogResponse(blog *models.Blog) dto.BlogResponse {
	likes := unmarshalStrings(blog.Likes)
	images := unmarshalStrings(blog.Images)

	comments := make([]dto.BlogComment, 0, len(blog.Comments))
	for _, c := range blog.Comments {
		comments = append(comments, dto.BlogComment{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt,
		})
	}

	return dto.BlogResponse{
		ID:        blog.ID,
		AuthorID:  blog.AuthorID,
		Title:     blog.Title,
		Content:   blog.Content,
		Images:    images,
		Likes:     likes,
		LikeCount: len(likes),
		Comments:  comments,
		CreatedAt: blog.CreatedAt,
	}
}
