package repository

import (
	"context"

	"phicoffee/internal/adapter/persistence/rowcodec"
	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase/interfaces"
)

const defaultFeedbackRange = "FEEDBACK!A:D"

// FeedbackSheetRepository appends feedback entries to their own sheet.
type FeedbackSheetRepository struct {
	store       interfaces.IRowStore
	appendRange string
}

var _ interfaces.IFeedbackRepository = (*FeedbackSheetRepository)(nil)

func NewFeedbackSheetRepository(store interfaces.IRowStore) *FeedbackSheetRepository {
	return &FeedbackSheetRepository{
		store:       store,
		appendRange: getenvDefault("FEEDBACK_RANGE", defaultFeedbackRange),
	}
}

func (r *FeedbackSheetRepository) Append(ctx context.Context, f entities.Feedback) error {
	return r.store.AppendRow(ctx, r.appendRange, rowcodec.EncodeFeedback(f))
}
