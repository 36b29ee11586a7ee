package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidFeedbackOrderID = errors.New("invalid feedback order id")
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
)

// Feedback is a post-order rating appended to its own sheet.
type Feedback struct {
	OrderID   string    `json:"order_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedback validates before construction: out-of-range ratings and missing
// order ids are rejected before any external call.
func NewFeedback(orderID string, rating int, comment string, createdAt time.Time) (Feedback, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Feedback{}, ErrInvalidFeedbackOrderID
	}
	if rating < 1 || rating > 5 {
		return Feedback{}, ErrInvalidRating
	}
	return Feedback{
		OrderID:   orderID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: createdAt,
	}, nil
}
