package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "phicoffee/internal/adapter/http/dto/request"
	response "phicoffee/internal/adapter/http/dto/response"
	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase"
	"phicoffee/pkg"
)

var errInvalidFeedbackPayload = pkg.NewDomainErrorSimple("INVALID_FEEDBACK_INPUT", "Invalid feedback payload", http.StatusBadRequest)

// FeedbackHandler handles post-order feedback submissions.

type FeedbackHandler struct {
	usecase usecase.IFeedbackUseCase
}

func NewFeedbackHandler(uc usecase.IFeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{usecase: uc}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var payload request.FeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFeedbackPayload.HTTPStatus, errInvalidFeedbackPayload.ToHTTPError())
		return
	}

	f, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitFeedbackCommand{
		OrderID: payload.OrderID,
		Rating:  payload.Rating,
		Comment: payload.Comment,
	})
	if err != nil {
		log.Printf("[feedback][handler] submit failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapFeedbackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFeedback(f))
}

func mapFeedbackError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidRating), errors.Is(err, entities.ErrInvalidFeedbackOrderID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFeedbackPersistenceFailed):
		return pkg.NewDomainError("FEEDBACK_SAVE_FAILED", "Failed to submit feedback", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
