package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase/interfaces"
)

var ErrFeedbackPersistenceFailed = errors.New("failed to submit feedback")

type SubmitFeedbackCommand struct {
	OrderID string
	Rating  int
	Comment string
}

// IFeedbackUseCase exposes the post-order feedback append.
type IFeedbackUseCase interface {
	Submit(ctx context.Context, cmd SubmitFeedbackCommand) (entities.Feedback, error)
}

type FeedbackUseCase struct {
	repo interfaces.IFeedbackRepository
}

var _ IFeedbackUseCase = (*FeedbackUseCase)(nil)

func NewFeedbackUseCase(repo interfaces.IFeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// Submit validates the rating range and order id before any external call;
// a rejected command appends nothing.
func (u *FeedbackUseCase) Submit(ctx context.Context, cmd SubmitFeedbackCommand) (entities.Feedback, error) {
	f, err := entities.NewFeedback(cmd.OrderID, cmd.Rating, cmd.Comment, time.Now())
	if err != nil {
		return entities.Feedback{}, err
	}

	if err := u.repo.Append(ctx, f); err != nil {
		log.Printf("[feedback][usecase] append failed order_id=%s err=%v", f.OrderID, err)
		return entities.Feedback{}, fmt.Errorf("%w: %v", ErrFeedbackPersistenceFailed, err)
	}
	log.Printf("[feedback][usecase] submit success order_id=%s rating=%d", f.OrderID, f.Rating)
	return f, nil
}
