package repositories

import (
	"jobconnect/internal/models"

	"gorm.io/gorm"
)

type BlogRepository struct{}

func NewBlogRepository() BlogRepository {
	return BlogRepository{}
}

func (r BlogRepository) Create(db *gorm.DB, blog *models.Blog) error {
	return db.Create(blog).Error
}

func (r BlogRepository) FindAll(db *gorm.DB) ([]models.Blog, error) {
	var blogs []models.Blog
	err := db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("blog_comments.created_at ASC")
	}).Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (r BlogRepository) FindByID(db *gorm.DB, id string) (*models.Blog, error) {
	var blog models.Blog
	err := db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("blog_comments.created_at ASC")
	}).First(&blog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateLikes overwrites the likes set after a toggle.
func (r BlogRepository) UpdateLikes(db *gorm.DB, blog *models.Blog) error {
	return db.Model(blog).Update("likes", blog.Likes).Error
}

func (r BlogRepository) AddComment(db *gorm.DB, comment *models.BlogComment) error {
	return db.Create(comment).Error
}
