package models

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id"`
	AuthorID  string    `json:"authorId" gorm:"column:author_id"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentCreate struct {
	Content string `json:"content"`
}

// CommentResponse is a comment enriched with its author summary.
type CommentResponse struct {
	ID        string        `json:"id"`
	PostID    string        `json:"postId"`
	Content   string        `json:"content"`
	Author    AuthorSummary `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
