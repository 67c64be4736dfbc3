package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/identity"
	"mealhub-api/models"
	"mealhub-api/policy"
	"mealhub-api/statemachine"
)

type OrderHandler struct {
	DB *gorm.DB
}

type PlaceOrderRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	MealID    uint   `json:"meal_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// Create places an order, snapshotting the meal's title and price
func (h *OrderHandler) Create(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid order payload", err))
		return
	}

	var meal models.Meal
	if err := h.DB.First(&meal, req.MealID).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Meal not found"))
		return
	}

	order := models.Order{
		UserEmail:     req.UserEmail,
		MealID:        meal.ID,
		MealTitle:     meal.Title,
		UnitPrice:     meal.Price,
		Quantity:      req.Quantity,
		TotalPrice:    meal.Price * float64(req.Quantity),
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentUnpaid,
	}
	if err := h.DB.Create(&order).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to place order", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// List returns the caller's orders; admins see everything
func (h *OrderHandler) List(c *gin.Context) {
	principal, _ := identity.PrincipalFrom(c)

	query := h.DB.Order("created_at desc")
	var caller models.User
	if err := h.DB.Where("email = ?", string(principal)).First(&caller).Error; err != nil || caller.Role != models.RoleAdmin {
		query = query.Where("user_email = ?", string(principal))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list orders", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus handles the chef's lifecycle transitions for an order
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Order not found"))
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid status payload", err))
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "chef"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := h.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to update order", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

// Cancel lets the ordering user cancel their own order while the
// statemachine still allows it
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}

	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Order not found"))
		return
	}

	if err := statemachine.CanTransition(order.Status, models.OrderCancelled, "user"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot cancel order",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}

	if err := h.DB.Model(&order).Update("status", models.OrderCancelled).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to cancel order", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
