package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleChef  UserRole = "chef"
	RoleAdmin UserRole = "admin"
)

// UserStatus flags accounts; fraud-flagged accounts are blocked from
// specific mutating actions by the policy layer.
type UserStatus string

const (
	StatusNormal UserStatus = "normal"
	StatusFraud  UserStatus = "fraud"
)

type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Role      UserRole   `json:"role" gorm:"not null;default:'user'"`
	Status    UserStatus `json:"status" gorm:"not null;default:'normal'"`
	ChefID    string     `json:"chef_id,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
