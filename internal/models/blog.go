package models

import "gorm.io/datatypes"

type Blog struct {
	BaseModel
	AuthorID string `gorm:"not null;index"`
	Title    string `gorm:"not null"`
	Content  string
	Images   datatypes.JSON `gorm:"type:jsonb"` // ordered list of stored filenames
	Likes    datatypes.JSON `gorm:"type:jsonb"` // set of user ids, toggle semantics

	Comments []BlogComment `gorm:"foreignKey:BlogID"`
}

type BlogComment struct {
	BaseModel
	BlogID     string `gorm:"not null;index"`
	UserID     string `gorm:"not null"`
	AuthorName string
	Text       string `gorm:"not null"`
}
