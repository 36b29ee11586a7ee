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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles order submission and invoice lookup.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
	baseURL string
}

func NewOrderHandler(uc usecase.IOrderUseCase, baseURL string) *OrderHandler {
	return &OrderHandler{usecase: uc, baseURL: baseURL}
}

// CreateOrder accepts a delivery pre-order submission.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cmd := usecase.SubmitOrderCommand{
		Channel:          entities.ChannelDelivery,
		CustomerName:     payload.Name,
		Phone:            payload.Phone,
		Notes:            payload.Notes,
		DeliveryLocation: payload.Location,
		CoordinatesURL:   payload.LocationCoordinates,
		Selections:       payload.ResolveSelections(),
		PaymentProofURL:  payload.PaymentProofURL,
	}
	h.submit(c, cmd)
}

// CreateSpotOrder accepts an on-the-spot pickup submission.
func (h *OrderHandler) CreateSpotOrder(c *gin.Context) {
	var payload request.SpotOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cmd := usecase.SubmitOrderCommand{
		Channel:         entities.ChannelSpot,
		CustomerName:    payload.Name,
		Phone:           payload.Phone,
		Notes:           payload.Notes,
		PickupTime:      payload.PickupTime,
		Selections:      payload.ResolveSelections(),
		PaymentProofURL: payload.PaymentProofURL,
	}
	h.submit(c, cmd)
}

func (h *OrderHandler) submit(c *gin.Context, cmd usecase.SubmitOrderCommand) {
	outcome, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[order][handler] submit failed channel=%s err=%v", cmd.Channel, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] submit success id=%s notified=%t", outcome.Order.ID, outcome.NotificationSent)

	c.JSON(http.StatusCreated, response.FromSubmitOutcome(
		outcome.Order,
		h.invoiceURL(outcome.Order.ID),
		outcome.RowAppended,
		outcome.NotificationSent,
	))
}

// GetOrderByID returns the invoice projection; an absent id is a plain 404,
// never an exception.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	o, err := h.usecase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o, h.invoiceURL(o.ID)))
}

func (h *OrderHandler) invoiceURL(orderID string) string {
	return h.baseURL + "/invoice/" + orderID
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidPhone),
		errors.Is(err, usecase.ErrInvalidLocation),
		errors.Is(err, usecase.ErrMissingPickupTime),
		errors.Is(err, usecase.ErrNoSelections),
		errors.Is(err, usecase.ErrUnknownSelection),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderPersistenceFailed):
		return pkg.NewDomainError("ORDER_SAVE_FAILED", "Failed to save order", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
