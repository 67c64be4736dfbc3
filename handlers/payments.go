package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/config"
	"mealhub-api/models"
	"mealhub-api/payments"
	"mealhub-api/policy"
)

type PaymentHandler struct {
	DB        *gorm.DB
	Processor payments.Processor
	Cfg       config.App
}

type CreateIntentRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// CreateIntent asks the payment processor for a payable session covering the
// order's total and returns the redirect URL.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid payment payload", err))
		return
	}

	var order models.Order
	if err := h.DB.First(&order, req.OrderID).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Order not found"))
		return
	}
	if order.PaymentStatus == models.PaymentPaid {
		apperr.Abort(c, apperr.New(apperr.Conflict, "Order is already paid"))
		return
	}

	url, err := h.Processor.CreatePayableSession(c.Request.Context(), payments.Session{
		AmountCents: int64(math.Round(order.TotalPrice * 100)),
		Description: order.MealTitle,
		SuccessURL:  h.Cfg.PaymentSuccessURL,
		CancelURL:   h.Cfg.PaymentCancelURL,
	})
	if err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to create payment session", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

type PaymentSuccessRequest struct {
	OrderID       uint    `json:"order_id" binding:"required"`
	UserEmail     string  `json:"user_email" binding:"required,email"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id" binding:"required"`
}

var errOrderAlreadyPaid = errors.New("order already paid")

// RecordSuccess stores the payment confirmation and marks the order paid.
// Both writes happen in one transaction so a failed status flip never leaves
// a stray payment row, and a replayed confirmation is rejected instead of
// recording a second payment.
func (h *PaymentHandler) RecordSuccess(c *gin.Context) {
	var req PaymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid payment confirmation", err))
		return
	}

	var payment models.Payment
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, req.OrderID).Error; err != nil {
			return err
		}
		if order.PaymentStatus == models.PaymentPaid {
			return errOrderAlreadyPaid
		}
		payment = models.Payment{
			UserEmail:     req.UserEmail,
			OrderID:       req.OrderID,
			Amount:        req.Amount,
			TransactionID: req.TransactionID,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("payment_status", models.PaymentPaid).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Abort(c, apperr.New(apperr.NotFound, "Order not found"))
			return
		}
		if errors.Is(err, errOrderAlreadyPaid) {
			apperr.Abort(c, apperr.New(apperr.Conflict, "Order is already paid"))
			return
		}
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to record payment", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded", "payment": payment})
}

// Get returns a single payment (owner only)
func (h *PaymentHandler) Get(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}
	var payment models.Payment
	if err := h.DB.First(&payment, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Payment not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}
