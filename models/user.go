package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProfileUpdate struct {
	Bio string `json:"bio"`
}

// AuthorSummary is the slice of a user embedded in posts and comments.
type AuthorSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserProfile is the public view of a user returned by GET /api/users/:id.
type UserProfile struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Bio            string   `json:"bio"`
	FollowerIDs    []string `json:"followerIds"`
	PostsCount     int64    `json:"postsCount"`
	FollowersCount int64    `json:"followersCount"`
	FollowingCount int64    `json:"followingCount"`
}

func (User) TableName() string {
	return "users"
}
