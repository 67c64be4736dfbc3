package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/models"
	"mealhub-api/policy"
)

type ReviewHandler struct {
	DB *gorm.DB
}

type CreateReviewRequest struct {
	MealID        uint   `json:"meal_id" binding:"required"`
	ReviewerEmail string `json:"reviewer_email" binding:"required,email"`
	ReviewerName  string `json:"reviewer_name"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

// Create posts a review for a meal
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid review payload", err))
		return
	}

	var meal models.Meal
	if err := h.DB.First(&meal, req.MealID).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Meal not found"))
		return
	}

	review := models.Review{
		MealID:        req.MealID,
		ReviewerEmail: req.ReviewerEmail,
		ReviewerName:  req.ReviewerName,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to create review", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review posted", "review": review})
}

// List returns all reviews (public)
func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	if err := h.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list reviews", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// ListByMeal returns all reviews for one meal (public)
func (h *ReviewHandler) ListByMeal(c *gin.Context) {
	mealID, aerr := policy.ParseID(c.Param("mealId"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var reviews []models.Review
	if err := h.DB.Where("meal_id = ?", mealID).Order("created_at desc").Find(&reviews).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list reviews", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// Update patches the reviewer's own review
func (h *ReviewHandler) Update(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var review models.Review
	if err := h.DB.First(&review, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Review not found"))
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid update payload", err))
		return
	}
	allowed := map[string]bool{"rating": true, "comment": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := h.DB.Model(&review).Updates(update).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to update review", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated", "review": review})
}

// Delete removes the reviewer's own review
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var review models.Review
	if err := h.DB.First(&review, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Review not found"))
		return
	}
	if err := h.DB.Delete(&review).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to delete review", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
