package domain

import "time"

// Role classifies the caller.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// SeatStatus tracks dormitory seat allocation.
type SeatStatus string

const (
	SeatStatusNone           SeatStatus = "none"
	SeatStatusPending        SeatStatus = "pending"
	SeatStatusPaymentPending SeatStatus = "payment_pending"
	SeatStatusApproved       SeatStatus = "approved"
)

// Account is a registered hall resident or administrator.
type Account struct {
	ID               string
	StudentID        string
	Email            string
	DOB              string
	PasswordHash     string
	Role             Role
	SeatStatus       SeatStatus
	SeatNumber       *string
	RequestTimestamp *time.Time
	PaymentTimestamp *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
