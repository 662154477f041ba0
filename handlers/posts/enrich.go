package posts

import (
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/models"
)

type commentCountRow struct {
	PostID string
	Count  int64
}

// ListPosts returns enriched posts newest first. A nil authorIDs slice means
// no author filter (explore); otherwise only posts by those authors.
func ListPosts(authorIDs []string) ([]models.PostResponse, error) {
	query := db.DB.Preload("Author").Preload("Likes").Order("created_at DESC")
	if authorIDs != nil {
		query = query.Where("author_id IN ?", authorIDs)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}

	return buildPostResponses(posts)
}

// PostByID returns one enriched post; the error is gorm.ErrRecordNotFound
// when the id is unknown.
func PostByID(id string) (models.PostResponse, error) {
	var post models.Post
	if err := db.DB.Preload("Author").Preload("Likes").First(&post, "id = ?", id).Error; err != nil {
		return models.PostResponse{}, err
	}

	var commentsCount int64
	if err := db.DB.Model(&models.Comment{}).Where("post_id = ?", id).Count(&commentsCount).Error; err != nil {
		return models.PostResponse{}, err
	}

	return newPostResponse(post, commentsCount), nil
}

func buildPostResponses(posts []models.Post) ([]models.PostResponse, error) {
	responses := make([]models.PostResponse, 0, len(posts))
	if len(posts) == 0 {
		return responses, nil
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	// one grouped query for all comment counts instead of one per post
	var counts []commentCountRow
	if err := db.DB.Model(&models.Comment{}).
		Select("post_id, count(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countByPost := make(map[string]int64, len(counts))
	for _, row := range counts {
		countByPost[row.PostID] = row.Count
	}

	for _, post := range posts {
		responses = append(responses, newPostResponse(post, countByPost[post.ID]))
	}
	return responses, nil
}

func newPostResponse(post models.Post, commentsCount int64) models.PostResponse {
	likes := make([]string, 0, len(post.Likes))
	for _, like := range post.Likes {
		likes = append(likes, like.UserID)
	}

	return models.PostResponse{
		ID:      post.ID,
		Content: post.Content,
		Author: models.AuthorSummary{
			ID:       post.Author.ID,
			Username: post.Author.Username,
		},
		Likes:         likes,
		CommentsCount: commentsCount,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}
