package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phicoffee/internal/adapter/http/handlers/mocks"
	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "https://phicoffee.example.com"

const deliveryPayload = `{
	"name": "Budi Santoso",
	"phone": "081234567890",
	"location": "Gedung B, Ruang 204",
	"coffeeSelections": [{"type": "phista coffee", "ice": {"withIce": 2, "withoutIce": 1}}]
}`

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"name":"Budi Santoso"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitOutcome{}, usecase.ErrInvalidPhone)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(deliveryPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("persistence failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitOutcome{}, usecase.ErrOrderPersistenceFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(deliveryPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		o := entities.Order{
			ID:           "ORDER-1746594605000-abc123def",
			Channel:      entities.ChannelDelivery,
			CreatedAt:    time.Now(),
			CustomerName: "Budi Santoso",
			Phone:        "081234567890",
			TotalPrice:   60000,
			Status:       entities.OrderStatusPendingPayment,
		}
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.SubmitOrderCommand) (usecase.SubmitOutcome, error) {
				if cmd.Channel != entities.ChannelDelivery {
					t.Fatalf("expected delivery channel, got %s", cmd.Channel)
				}
				if len(cmd.Selections) != 1 || cmd.Selections[0].CatalogKey != "phista coffee" {
					t.Fatalf("unexpected selections: %+v", cmd.Selections)
				}
				return usecase.SubmitOutcome{Order: o, RowAppended: true, NotificationSent: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(deliveryPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["notification_sent"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		order, _ := body["order"].(map[string]any)
		if order["id"] != o.ID {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if order["invoice_url"] != testBaseURL+"/invoice/"+o.ID {
			t.Fatalf("unexpected invoice url: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_CreateSpotOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing pickup time rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders/spot", h.CreateSpotOrder)

		payload := `{"name":"Siti Rahma","phone":"089876543210","coffeeSelections":[{"type":"phista coffee","ice":{"withIce":1}}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/spot", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/orders/spot", h.CreateSpotOrder)

		o := entities.Order{
			ID:         "SPOT-1746594605000-abc123def",
			Channel:    entities.ChannelSpot,
			CreatedAt:  time.Now(),
			PickupTime: "10:30",
			TotalPrice: 20000,
			Status:     entities.OrderStatusPendingPayment,
		}
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.SubmitOrderCommand) (usecase.SubmitOutcome, error) {
				if cmd.Channel != entities.ChannelSpot || cmd.PickupTime != "10:30" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.SubmitOutcome{Order: o, RowAppended: true}, nil
			})

		payload := `{"name":"Siti Rahma","phone":"089876543210","pickupTime":"10:30","coffeeSelections":[{"type":"phista coffee","ice":{"withIce":1}}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/spot", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrderByID)

		o := entities.Order{
			ID:           "ORDER-1-x",
			Channel:      entities.ChannelDelivery,
			CreatedAt:    time.Now(),
			CustomerName: "Budi Santoso",
			TotalPrice:   60000,
			Status:       entities.OrderStatusVerified,
		}
		uc.EXPECT().GetInvoice(gomock.Any(), "ORDER-1-x").Return(o, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ORDER-1-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ORDER-1-x" || body["total_price_display"] != "60,000" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testBaseURL)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrderByID)

		uc.EXPECT().GetInvoice(gomock.Any(), "ORDER-9-x").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ORDER-9-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	for _, err := range []error{
		usecase.ErrInvalidCustomerName,
		usecase.ErrInvalidPhone,
		usecase.ErrInvalidLocation,
		usecase.ErrMissingPickupTime,
		usecase.ErrNoSelections,
		usecase.ErrUnknownSelection,
		usecase.ErrInvalidOrderID,
	} {
		if got := mapOrderError(err); got.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, got.HTTPStatus)
		}
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrOrderPersistenceFailed); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
