package comments

import (
	"net/http"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/models"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List a post's comments
// @Description Comments on a post, oldest first, with author summaries
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {array} models.CommentResponse
// @Failure 500 {object} map[string]string "message: Server error fetching comments."
// @Router /api/posts/{id}/comments [get]
func GetComments(c *gin.Context) {
	postID := c.Param("id")

	var comments []models.Comment
	if err := db.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		utils.LogError(err, "Error fetching the comments")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching comments.")
		return
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, newCommentResponse(comment))
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Comment on a post
// @Description Create a comment authored by the caller
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body models.CommentCreate true "Comment content"
// @Security BearerAuth
// @Success 201 {object} models.CommentResponse
// @Failure 400 {object} map[string]string "message: Comment content cannot be empty."
// @Failure 500 {object} map[string]string "message: Server error creating comment."
// @Router /api/posts/{id}/comments [post]
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	postID := c.Param("id")

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		utils.SendError(c, http.StatusBadRequest, "Comment content cannot be empty.")
		return
	}

	comment := models.Comment{
		PostID:   postID,
		AuthorID: userID.(string),
		Content:  input.Content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the comment")
		utils.SendError(c, http.StatusInternalServerError, "Server error creating comment.")
		return
	}

	if err := db.DB.Preload("Author").First(&comment, "id = ?", comment.ID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error re-fetching the comment")
		utils.SendError(c, http.StatusInternalServerError, "Server error creating comment.")
		return
	}

	c.JSON(http.StatusCreated, newCommentResponse(comment))
}

// @Summary Edit a comment
// @Description Update a comment's content; only the author may edit
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body models.CommentCreate true "New content"
// @Security BearerAuth
// @Success 200 {object} models.Comment
// @Failure 403 {object} map[string]string "message: Forbidden"
// @Failure 404 {object} map[string]string "message: Comment not found"
// @Failure 500 {object} map[string]string "message: Error updating comment"
// @Router /api/comments/{id} [put]
func UpdateComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var comment models.Comment
	commentID := c.Param("id")

	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if comment.AuthorID != userID.(string) {
		utils.SendError(c, http.StatusForbidden, "Forbidden")
		return
	}

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment.Content = input.Content
	if err := db.DB.Save(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the comment")
		utils.SendError(c, http.StatusInternalServerError, "Error updating comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}

// @Summary Delete a comment
// @Description Delete a comment; only the author may delete
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "message: Forbidden"
// @Failure 404 {object} map[string]string "message: Comment not found"
// @Failure 500 {object} map[string]string "message: Error deleting comment"
// @Router /api/comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var comment models.Comment
	commentID := c.Param("id")

	if err := db.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if comment.AuthorID != userID.(string) {
		utils.SendError(c, http.StatusForbidden, "Forbidden")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting the comment")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting comment")
		return
	}

	c.Status(http.StatusNoContent)
}

func newCommentResponse(comment models.Comment) models.CommentResponse {
	return models.CommentResponse{
		ID:      comment.ID,
		PostID:  comment.PostID,
		Content: comment.Content,
		Author: models.AuthorSummary{
			ID:       comment.Author.ID,
			Username: comment.Author.Username,
		},
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
