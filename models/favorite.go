package models

import "time"

// Favorite links a user to a meal. The composite unique index makes
// duplicate submissions resolvable at the storage layer.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"uniqueIndex:idx_fav_user_meal;not null"`
	MealID    uint      `json:"meal_id" gorm:"uniqueIndex:idx_fav_user_meal;not null"`
	CreatedAt time.Time `json:"created_at"`
}
