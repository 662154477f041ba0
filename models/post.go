package models

import (
	"time"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AuthorID  string    `json:"authorId" gorm:"column:author_id"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	Content   string    `json:"content"`
	Likes     []Like    `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostCreate struct {
	Content string `json:"content"`
}

type PostUpdate struct {
	Content string `json:"content"`
}

// PostResponse is a post enriched with its author, the user ids that liked it
// and its comment count.
type PostResponse struct {
	ID            string        `json:"id"`
	Content       string        `json:"content"`
	Author        AuthorSummary `json:"author"`
	Likes         []string      `json:"likes"`
	CommentsCount int64         `json:"commentsCount"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
