package models

import "time"

type Meal struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	ChefName    string    `json:"chef_name"`
	ChefEmail   string    `json:"chef_email" gorm:"index;not null"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Rating      float64   `json:"rating" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
