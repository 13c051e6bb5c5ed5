package dto

import "time"

// PostNoticeRequest payload.
type PostNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoticeResponse is a published notice.
type NoticeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
