package users

import (
	"errors"
	"net/http"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/handlers/posts"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/models"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary Update own profile
// @Description Update the caller's bio
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Profile fields"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 500 {object} map[string]string "message: Error updating profile."
// @Router /api/profile [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Bio = input.Bio
	if err := db.DB.Save(&user).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the profile")
		utils.SendError(c, http.StatusInternalServerError, "Error updating profile.")
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Get a user's public profile
// @Description Profile with follower id list and post/follower/following counts
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} map[string]string "message: User not found"
// @Failure 500 {object} map[string]string "message: Server error fetching user."
// @Router /api/users/{id} [get]
func GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
		} else {
			utils.LogError(err, "Error fetching the user")
			utils.SendError(c, http.StatusInternalServerError, "Server error fetching user.")
		}
		return
	}

	var followerIDs []string
	if err := db.DB.Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &followerIDs).Error; err != nil {
		utils.LogError(err, "Error loading the follower list")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching user.")
		return
	}
	if followerIDs == nil {
		followerIDs = []string{}
	}

	var postsCount int64
	if err := db.DB.Model(&models.Post{}).Where("author_id = ?", userID).Count(&postsCount).Error; err != nil {
		utils.LogError(err, "Error counting posts")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching user.")
		return
	}

	var followingCount int64
	if err := db.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&followingCount).Error; err != nil {
		utils.LogError(err, "Error counting followed users")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching user.")
		return
	}

	c.JSON(http.StatusOK, models.UserProfile{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		FollowerIDs:    followerIDs,
		PostsCount:     postsCount,
		FollowersCount: int64(len(followerIDs)),
		FollowingCount: followingCount,
	})
}

// @Summary Get a user's posts
// @Description The user's posts, newest first, with author, likes and comment counts
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {array} models.PostResponse
// @Failure 500 {object} map[string]string "message: Server error fetching user posts."
// @Router /api/users/{id}/posts [get]
func GetUserPosts(c *gin.Context) {
	userID := c.Param("id")

	responses, err := posts.ListPosts([]string{userID})
	if err != nil {
		utils.LogError(err, "Error fetching the user's posts")
		utils.SendError(c, http.StatusInternalServerError, "Server error fetching user posts.")
		return
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Follow or unfollow a user
// @Description Toggle the follow edge from the caller to the target user
// @Tags users
// @Produce json
// @Param id path string true "Target user ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Successfully followed. / Successfully unfollowed."
// @Failure 400 {object} map[string]string "message: You cannot follow yourself."
// @Failure 404 {object} map[string]string "message: User not found"
// @Failure 500 {object} map[string]string "message: Server error processing follow request."
// @Router /api/users/{id}/follow [post]
func ToggleFollow(c *gin.Context) {
	currentUserID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	targetUserID := c.Param("id")

	if targetUserID == currentUserID.(string) {
		utils.SendError(c, http.StatusBadRequest, "You cannot follow yourself.")
		return
	}

	var target models.User
	if err := db.DB.First(&target, "id = ?", targetUserID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	// check and flip the edge in one transaction so concurrent toggles cannot
	// half-apply it
	var message string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var follow models.Follow
		err := tx.Where("follower_id = ? AND following_id = ?", currentUserID, targetUserID).
			First(&follow).Error
		if err == nil {
			message = "Successfully unfollowed."
			return tx.Delete(&follow).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		message = "Successfully followed."
		follow = models.Follow{
			ID:          uuid.NewString(),
			FollowerID:  currentUserID.(string),
			FollowingID: targetUserID,
		}
		return tx.Create(&follow).Error
	})
	if err != nil {
		utils.LogErrorWithUser(currentUserID, err, "Error toggling the follow edge")
		utils.SendError(c, http.StatusInternalServerError, "Server error processing follow request.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
