package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/models"
	"mealhub-api/policy"
)

type MealHandler struct {
	DB *gorm.DB
}

type CreateMealRequest struct {
	Title       string  `json:"title" binding:"required"`
	ChefName    string  `json:"chef_name"`
	ChefEmail   string  `json:"chef_email" binding:"required,email"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Rating      float64 `json:"rating"`
}

// Create adds a meal to the catalogue (chef only, fraud-gated)
func (h *MealHandler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid meal payload", err))
		return
	}

	meal := models.Meal{
		Title:       req.Title,
		ChefName:    req.ChefName,
		ChefEmail:   req.ChefEmail,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
	}
	if err := h.DB.Create(&meal).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to create meal", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal created", "meal": meal})
}

// List returns all meals (public) with optional filters
func (h *MealHandler) List(c *gin.Context) {
	var meals []models.Meal
	query := h.DB

	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if chef := c.Query("chef_email"); chef != "" {
		query = query.Where("chef_email = ?", chef)
	}

	if err := query.Order("created_at desc").Find(&meals).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list meals", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

// Get returns a single meal (public)
func (h *MealHandler) Get(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var meal models.Meal
	if err := h.DB.First(&meal, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Meal not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// Update patches a meal's safe fields (owning chef only)
func (h *MealHandler) Update(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var meal models.Meal
	if err := h.DB.First(&meal, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Meal not found"))
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid update payload", err))
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"title": true, "image": true, "description": true, "price": true, "rating": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := h.DB.Model(&meal).Updates(update).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to update meal", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated", "meal": meal})
}

// Delete removes a meal (owning chef only)
func (h *MealHandler) Delete(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var meal models.Meal
	if err := h.DB.First(&meal, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Meal not found"))
		return
	}
	if err := h.DB.Delete(&meal).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to delete meal", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}
