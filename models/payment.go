package models

import "time"

type Payment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserEmail     string    `json:"user_email" gorm:"index;not null"`
	OrderID       uint      `json:"order_id" gorm:"not null"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}
