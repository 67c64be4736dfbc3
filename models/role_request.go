package models

import "time"

// RequestStatus is the lifecycle of a role-change request
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoleRequest asks an admin to promote the requesting user. PendingEmail
// mirrors Email while the request is pending and is cleared on resolution;
// its unique index lets the storage layer guarantee at most one pending
// request per identity even under concurrent submissions.
type RoleRequest struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Email         string        `json:"email" gorm:"index;not null"`
	RequestedRole UserRole      `json:"requested_role" gorm:"not null"`
	Status        RequestStatus `json:"status" gorm:"not null;default:'pending'"`
	PendingEmail  *string       `json:"-" gorm:"uniqueIndex"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
