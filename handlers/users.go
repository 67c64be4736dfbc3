package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/models"
)

type UserHandler struct {
	DB *gorm.DB
}

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photo_url"`
}

// Register creates the caller's profile on first sign-in. Registering an
// existing identity again is a no-op success, not an error.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid registration payload", err))
		return
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already registered", "user": existing})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to check existing user", err))
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleUser,
		Status:   models.StatusNormal,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// concurrent first registration, still a success
			c.JSON(http.StatusOK, gin.H{"message": "User already registered"})
			return
		}
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to create user", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "user": user})
}

// List returns all users — admin only
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	query := h.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list users", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// Get returns a single user by email
func (h *UserHandler) Get(c *gin.Context) {
	var user models.User
	if err := h.DB.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "User not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// MakeFraud flags an account — admin only
func (h *UserHandler) MakeFraud(c *gin.Context) {
	email := c.Param("email")
	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "User not found"))
		return
	}
	if err := h.DB.Model(&user).Update("status", models.StatusFraud).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to flag user", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User flagged as fraud", "email": email})
}
