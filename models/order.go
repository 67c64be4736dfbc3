package models

import "time"

// OrderStatus represents the lifecycle states of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// PaymentState tracks whether an order has been paid for
type PaymentState string

const (
	PaymentUnpaid PaymentState = "unpaid"
	PaymentPaid   PaymentState = "paid"
)

type Order struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	UserEmail     string       `json:"user_email" gorm:"index;not null"`
	MealID        uint         `json:"meal_id" gorm:"not null"`
	MealTitle     string       `json:"meal_title"` // snapshot at order time
	UnitPrice     float64      `json:"unit_price"` // snapshot at order time
	Quantity      int          `json:"quantity" gorm:"not null"`
	TotalPrice    float64      `json:"total_price"`
	Status        OrderStatus  `json:"status" gorm:"not null;default:'PENDING'"`
	PaymentStatus PaymentState `json:"payment_status" gorm:"not null;default:'unpaid'"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
