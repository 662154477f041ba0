package auth

import (
	"errors"
	"net/http"

	"github.com/anand7600/CodeAlpha-Social-Media-Platform/db"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/models"
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Sign up
// @Description Create a new account with username, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.SignupInput true "Account information"
// @Success 201 {object} map[string]interface{} "message, userId"
// @Failure 400 {object} map[string]string "message: All fields are required."
// @Failure 409 {object} map[string]string "message: Username or email already exists."
// @Failure 500 {object} map[string]string "message: Server error during signup."
// @Router /api/auth/signup [post]
func Signup(c *gin.Context) {
	var input models.SignupInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		utils.SendError(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	var existing models.User
	err := db.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "Username or email already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking for an existing user")
		utils.SendError(c, http.StatusInternalServerError, "Server error during signup.")
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		utils.LogError(err, "Error hashing the password")
		utils.SendError(c, http.StatusInternalServerError, "Server error during signup.")
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: passwordHash,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error creating the user")
		utils.SendError(c, http.StatusInternalServerError, "Server error during signup.")
		return
	}

	utils.LogSuccessWithUser(user.ID, "User created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

// @Summary Log in
// @Description Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{} "message, token, user"
// @Failure 401 {object} map[string]string "message: Invalid credentials."
// @Failure 500 {object} map[string]string "message: Server error during login."
// @Router /api/auth/login [post]
func Login(c *gin.Context) {
	var input models.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	err := db.DB.Where("username = ?", input.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid credentials.")
		} else {
			utils.LogError(err, "Error looking up the user")
			utils.SendError(c, http.StatusInternalServerError, "Server error during login.")
		}
		return
	}

	if !samePassword(input.Password, user.Password) {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	token, err := utils.GenerateJWT(user, 24)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error signing the token")
		utils.SendError(c, http.StatusInternalServerError, "Server error during login.")
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword))
	return err == nil
}
