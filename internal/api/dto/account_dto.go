package dto

import "time"

// AccountResponse is an account without its password hash.
type AccountResponse struct {
	ID               string     `json:"id"`
	StudentID        string     `json:"studentId"`
	Email            string     `json:"email"`
	DOB              string     `json:"dob"`
	Role             string     `json:"role"`
	SeatStatus       string     `json:"seatStatus"`
	SeatNumber       *string    `json:"seatNumber"`
	RequestTimestamp *time.Time `json:"requestTimestamp"`
	PaymentTimestamp *time.Time `json:"paymentTimestamp"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ApproveSeatRequest payload.
type ApproveSeatRequest struct {
	UserID     string `json:"userId"`
	SeatNumber string `json:"seatNumber"`
}

// AccountMessageResponse acknowledges a seat transition with the updated account.
type AccountMessageResponse struct {
	Message string          `json:"message"`
	User    AccountResponse `json:"user"`
}
