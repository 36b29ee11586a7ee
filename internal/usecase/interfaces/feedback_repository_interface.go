package interfaces

import (
	"context"

	"phicoffee/internal/domain/entities"
)

// IFeedbackRepository abstracts sheet-row persistence for feedback entries.
type IFeedbackRepository interface {
	Append(ctx context.Context, f entities.Feedback) error
}
