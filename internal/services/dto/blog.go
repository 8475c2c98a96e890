package dto

import "time"

type CreateBlogRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type BlogComment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BlogResponse struct {
	ID        string        `json:"id"`
	AuthorID  string        `json:"authorId"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Images    []string      `json:"images"`
	Likes     []string      `json:"likes"`
	LikeCount int           `json:"likeCount"`
	Comments  []BlogComment `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
}
