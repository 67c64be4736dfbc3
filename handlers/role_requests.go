package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mealhub-api/apperr"
	"mealhub-api/models"
	"mealhub-api/policy"
)

type RoleRequestHandler struct {
	DB *gorm.DB
}

type CreateRoleRequestRequest struct {
	Email         string          `json:"email" binding:"required,email"`
	RequestedRole models.UserRole `json:"requested_role" binding:"required"`
}

// Create submits a role-change request. The unique pending_email index lets
// the store reject a second outstanding request, even under concurrency.
func (h *RoleRequestHandler) Create(c *gin.Context) {
	var req CreateRoleRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.InvalidArgument, "Invalid role request payload", err))
		return
	}
	if req.RequestedRole != models.RoleChef && req.RequestedRole != models.RoleAdmin {
		apperr.Abort(c, apperr.New(apperr.InvalidArgument, "Requested role must be chef or admin"))
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "No profile found for this account"))
		return
	}

	pending := req.Email
	request := models.RoleRequest{
		Email:         req.Email,
		RequestedRole: req.RequestedRole,
		Status:        models.RequestPending,
		PendingEmail:  &pending,
	}
	if err := h.DB.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apperr.Abort(c, apperr.New(apperr.Conflict, "A pending role request already exists for this account"))
			return
		}
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to submit role request", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Role request submitted", "request": request})
}

// List returns all role requests — admin only
func (h *RoleRequestHandler) List(c *gin.Context) {
	var requests []models.RoleRequest
	query := h.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to list role requests", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

// Accept approves a pending request: the user record is updated first and
// the request is only marked approved once that write succeeded.
func (h *RoleRequestHandler) Accept(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}

	var request models.RoleRequest
	if err := h.DB.First(&request, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Role request not found"))
		return
	}
	if request.Status != models.RequestPending {
		apperr.Abort(c, apperr.New(apperr.Conflict, "Role request already resolved"))
		return
	}

	var chefID string
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("email = ?", request.Email).First(&user).Error; err != nil {
			return err
		}
		update := map[string]interface{}{"role": request.RequestedRole}
		if request.RequestedRole == models.RoleChef {
			chefID = uuid.NewString()
			update["chef_id"] = chefID
		}
		if err := tx.Model(&user).Updates(update).Error; err != nil {
			return err
		}
		return tx.Model(&request).Updates(map[string]interface{}{
			"status":        models.RequestApproved,
			"pending_email": nil,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Abort(c, apperr.New(apperr.NotFound, "Requesting user no longer exists"))
			return
		}
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to approve role request", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Role request approved",
		"request_id": request.ID,
		"email":      request.Email,
		"role":       request.RequestedRole,
		"chef_id":    chefID,
	})
}

// Reject declines a pending request; the user record is never touched
func (h *RoleRequestHandler) Reject(c *gin.Context) {
	id, aerr := policy.ParseID(c.Param("id"))
	if aerr != nil {
		apperr.Abort(c, aerr)
		return
	}

	var request models.RoleRequest
	if err := h.DB.First(&request, id).Error; err != nil {
		apperr.Abort(c, apperr.New(apperr.NotFound, "Role request not found"))
		return
	}
	if request.Status != models.RequestPending {
		apperr.Abort(c, apperr.New(apperr.Conflict, "Role request already resolved"))
		return
	}

	err := h.DB.Model(&request).Updates(map[string]interface{}{
		"status":        models.RequestRejected,
		"pending_email": nil,
	}).Error
	if err != nil {
		apperr.Abort(c, apperr.Wrap(apperr.Internal, "Failed to reject role request", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role request rejected", "request_id": request.ID})
}
