package posts

import (
	"errors"
	"net/http"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/models"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Personalized feed
// @Description Posts authored by the caller or anyone the caller follows, newest first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PostResponse
// @Failure 500 {object} map[string]string "message: Server error fetching feed."
// @Router /api/posts/feed [get]
func GetFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var followingIDs []string
	if err := db.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &followingIDs).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading the follow list")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching feed.")
		return
	}

	authorIDs := append(followingIDs, userID.(string))

	responses, err := ListPosts(authorIDs)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching the feed")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching feed.")
		return
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Explore feed
// @Description All posts, newest first, with no personalization filter
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PostResponse
// @Failure 500 {object} map[string]string "message: Error fetching explore feed."
// @Router /api/posts/explore [get]
func GetExplore(c *gin.Context) {
	responses, err := ListPosts(nil)
	if err != nil {
		utils.LogError(err, "Error fetching the explore feed")
		utils.SendError(c, http.StatusInternalServerError, "Error fetching explore feed.")
		return
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Get a post
// @Description Retrieve one post with author, likes and comment count
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} models.PostResponse
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Error fetching post."
// @Router /api/posts/{id} [get]
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")

	response, err := PostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
		} else {
			utils.LogError(err, "Error fetching the post")
			utils.SendError(c, http.StatusInternalServerError, "Error fetching post.")
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create a post
// @Description Create a post authored by the caller
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.PostCreate true "Post content"
// @Security BearerAuth
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string "message: Post content cannot be empty."
// @Failure 500 {object} map[string]string "message: Server error creating post."
// @Router /api/posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var input models.PostCreate
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		utils.SendError(c, http.StatusBadRequest, "Post content cannot be empty.")
		return
	}

	post := models.Post{
		AuthorID: userID.(string),
		Content:  input.Content,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the post")
		utils.SendError(c, http.StatusInternalServerError, "Server error creating post.")
		return
	}

	utils.LogSuccessWithUser(userID, "Post created")
	c.JSON(http.StatusCreated, post)
}

// @Summary Edit a post
// @Description Update the content of a post; only the author may edit
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body models.PostUpdate true "New content"
// @Security BearerAuth
// @Success 200 {object} models.Post
// @Failure 403 {object} map[string]string "message: Forbidden"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Error updating post"
// @Router /api/posts/{id} [put]
func UpdatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.AuthorID != userID.(string) {
		utils.SendError(c, http.StatusForbidden, "Forbidden")
		return
	}

	var input models.PostUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	post.Content = input.Content
	if err := db.DB.Save(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the post")
		utils.SendError(c, http.StatusInternalServerError, "Error updating post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary Delete a post
// @Description Delete a post and its likes and comments; only the author may delete
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "message: Forbidden"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Error deleting post"
// @Router /api/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Post not found")
		return
	}

	if post.AuthorID != userID.(string) {
		utils.SendError(c, http.StatusForbidden, "Forbidden")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting the post")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting post")
		return
	}

	utils.LogSuccessWithUser(userID, "Post deleted")
	c.Status(http.StatusNoContent)
}
