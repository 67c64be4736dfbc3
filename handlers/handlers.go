package handlers

import (
	"gorm.io/gorm"

	"mealhub-api/config"
	"mealhub-api/payments"
)

// Set bundles every resource handler with its injected dependencies
type Set struct {
	Users        *UserHandler
	Meals        *MealHandler
	Reviews      *ReviewHandler
	Favorites    *FavoriteHandler
	Orders       *OrderHandler
	RoleRequests *RoleRequestHandler
	Payments     *PaymentHandler
	Admin        *AdminHandler
}

func NewSet(db *gorm.DB, processor payments.Processor, cfg config.App) *Set {
	return &Set{
		Users:        &UserHandler{DB: db},
		Meals:        &MealHandler{DB: db},
		Reviews:      &ReviewHandler{DB: db},
		Favorites:    &FavoriteHandler{DB: db},
		Orders:       &OrderHandler{DB: db},
		RoleRequests: &RoleRequestHandler{DB: db},
		Payments:     &PaymentHandler{DB: db, Processor: processor, Cfg: cfg},
		Admin:        &AdminHandler{DB: db},
	}
}
