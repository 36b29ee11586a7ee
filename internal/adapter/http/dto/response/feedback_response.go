package response

import "phicoffee/internal/domain/entities"

type FeedbackResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func FromFeedback(f entities.Feedback) FeedbackResponse {
	return FeedbackResponse{
		Success: true,
		OrderID: f.OrderID,
		Rating:  f.Rating,
		Comment: f.Comment,
	}
}
