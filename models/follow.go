package models

import (
	"time"
)

// Follow is the directed edge follower -> following. One row is the whole
// edge: the follower set and following set of a user are the two projections
// of this table, so the two sides can never disagree.
type Follow struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FollowerID  string    `json:"followerId" gorm:"column:follower_id;uniqueIndex:idx_follows_pair"`
	FollowingID string    `json:"followingId" gorm:"column:following_id;uniqueIndex:idx_follows_pair"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}
