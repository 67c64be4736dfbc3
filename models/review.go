package models

import "time"

type Review struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MealID        uint      `json:"meal_id" gorm:"index;not null"`
	ReviewerEmail string    `json:"reviewer_email" gorm:"index;not null"`
	ReviewerName  string    `json:"reviewer_name"`
	Rating        int       `json:"rating" gorm:"not null"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
