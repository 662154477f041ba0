package likes

import (
	"errors"
	"net/http"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/posts"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/models"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Toggle like on a post
// @Description Like the post if not yet liked, otherwise remove the like
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} models.PostResponse
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Server error processing like."
// @Router /api/posts/{id}/like [post]
func ToggleLike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	postID := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	var like models.Like
	err := db.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	switch {
	case err == nil:
		if err := db.DB.Delete(&like).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error removing the like")
			utils.SendError(c, http.StatusInternalServerError, "Server error processing like.")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like = models.Like{
			PostID: postID,
			UserID: userID.(string),
		}
		if err := db.DB.Create(&like).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error adding the like")
			utils.SendError(c, http.StatusInternalServerError, "Server error processing like.")
			return
		}
	default:
		utils.LogErrorWithUser(userID, err, "Error checking for an existing like")
		utils.SendError(c, http.StatusInternalServerError, "Server error processing like.")
		return
	}

	response, err := posts.PostByID(postID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error re-fetching the post")
		utils.SendError(c, http.StatusInternalServerError, "Server error processing like.")
		return
	}

	c.JSON(http.StatusOK, response)
}
