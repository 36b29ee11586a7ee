package request

// FeedbackRequest is the post-order rating payload. The rating range is
// enforced in the domain before any row is appended.
type FeedbackRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
