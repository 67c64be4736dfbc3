package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/models"
)

type AdminHandler struct {
	DB *gorm.DB
}

// Statistics returns the platform dashboard — admin only
func (h *AdminHandler) Statistics(c *gin.Context) {
	var users, meals, orders, reviews, pendingRequests int64
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &users},
		{&models.Meal{}, &meals},
		{&models.Order{}, &orders},
		{&models.Review{}, &reviews},
	}
	for _, cnt := range counts {
		if err := h.DB.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to compute statistics", err))
			return
		}
	}
	if err := h.DB.Model(&models.RoleRequest{}).Where("status = ?", models.RequestPending).Count(&pendingRequests).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to compute statistics", err))
		return
	}

	var revenue float64
	err := h.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error
	if err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to compute revenue", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":                 users,
		"meals":                 meals,
		"orders":                orders,
		"reviews":               reviews,
		"pending_role_requests": pendingRequests,
		"revenue":               revenue,
	})
}
