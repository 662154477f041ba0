package models

import (
	"time"
)

// Like is a (user, post) pair; the composite unique index guarantees a user
// can like a given post at most once.
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;uniqueIndex:idx_likes_user_post"`
	UserID    string    `json:"userId" gorm:"column:user_id;uniqueIndex:idx_likes_user_post"`
	CreatedAt time.Time `json:"createdAt"`
}
