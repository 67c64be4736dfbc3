package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/models"
	"mealhub-api/policy"
)

type FavoriteHandler struct {
	DB *gorm.DB
}

type CreateFavoriteRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	MealID    uint   `json:"meal_id" binding:"required"`
}

// Create marks a meal as favorite. Favoriting the same meal twice is an
// idempotent success; the unique index arbitrates concurrent duplicates.
func (h *FavoriteHandler) Create(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid favorite payload", err))
		return
	}

	var meal models.Meal
	if err := h.DB.First(&meal, req.MealID).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Meal not found"))
		return
	}

	fav := models.Favorite{UserEmail: req.UserEmail, MealID: req.MealID}
	if err := h.DB.Create(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{"message": "Meal already in favorites"})
			return
		}
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to add favorite", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites", "favorite": fav})
}

// ListByEmail returns a user's favorites
func (h *FavoriteHandler) ListByEmail(c *gin.Context) {
	var favorites []models.Favorite
	if err := h.DB.Where("user_email = ?", c.Param("email")).Order("created_at desc").Find(&favorites).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list favorites", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(favorites), "favorites": favorites})
}

// Delete removes a favorite (owner only)
func (h *FavoriteHandler) Delete(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var fav models.Favorite
	if err := h.DB.First(&fav, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Favorite not found"))
		return
	}
	if err := h.DB.Delete(&fav).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to delete favorite", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
