package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"phicoffee/internal/domain/entities"
	mock_interfaces "phicoffee/internal/usecase/interfaces/mocks"
)

func validCommand() SubmitOrderCommand {
	return SubmitOrderCommand{
		Channel:          entities.ChannelDelivery,
		CustomerName:     "Budi Santoso",
		Phone:            "081234567890",
		DeliveryLocation: "Gedung B, Ruang 204",
		Selections: []entities.CoffeeSelection{
			{CatalogKey: "phista coffee", Ice: entities.IceSplit{WithIce: 2, WithoutIce: 1}},
			{CatalogKey: "Phicoffee Brown Sugar", Ice: entities.IceSplit{WithIce: 1}},
		},
	}
}

func TestOrderUseCase_Submit_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Neither collaborator may be reached when validation rejects.
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	notifier := mock_interfaces.NewMockIOrderNotifier(ctrl)
	u := NewOrderUseCase(repo, notifier, entities.DefaultCatalog())

	tests := []struct {
		name    string
		mutate  func(cmd *SubmitOrderCommand)
		wantErr error
	}{
		{
			name:    "name too short",
			mutate:  func(cmd *SubmitOrderCommand) { cmd.CustomerName = "B" },
			wantErr: ErrInvalidCustomerName,
		},
		{
			name:    "name of only whitespace",
			mutate:  func(cmd *SubmitOrderCommand) { cmd.CustomerName = "   " },
			wantErr: ErrInvalidCustomerName,
		},
		{
			name:    "phone too short",
			mutate:  func(cmd *SubmitOrderCommand) { cmd.Phone = "0812345" },
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "delivery location too short",
			mutate:  func(cmd *SubmitOrderCommand) { cmd.DeliveryLocation = "B2" },
			wantErr: ErrInvalidLocation,
		},
		{
			name: "spot order without pickup time",
			mutate: func(cmd *SubmitOrderCommand) {
				cmd.Channel = entities.ChannelSpot
				cmd.PickupTime = "  "
			},
			wantErr: ErrMissingPickupTime,
		},
		{
			name:    "no selections",
			mutate:  func(cmd *SubmitOrderCommand) { cmd.Selections = nil },
			wantErr: ErrNoSelections,
		},
		{
			name: "all selections have zero quantity",
			mutate: func(cmd *SubmitOrderCommand) {
				cmd.Selections = []entities.CoffeeSelection{{CatalogKey: "phista coffee"}}
			},
			wantErr: ErrNoSelections,
		},
		{
			name: "selection not in catalog",
			mutate: func(cmd *SubmitOrderCommand) {
				cmd.Selections = []entities.CoffeeSelection{
					{CatalogKey: "mystery drink", Ice: entities.IceSplit{WithIce: 1}},
				}
			},
			wantErr: ErrUnknownSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := u.Submit(context.Background(), cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOrderUseCase_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("happy path recomputes the total and notifies", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIOrderNotifier(ctrl)
		u := NewOrderUseCase(repo, notifier, entities.DefaultCatalog())

		var saved entities.Order
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) error {
				saved = o
				return nil
			})
		notifier.EXPECT().NotifyNewOrder(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := u.Submit(context.Background(), validCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.RowAppended || !outcome.NotificationSent {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
		// 3x 20000 phista + 1x 18000 brown sugar.
		if saved.TotalPrice != 78000 {
			t.Fatalf("expected recomputed total 78000, got %d", saved.TotalPrice)
		}
		if !strings.HasPrefix(saved.ID, entities.OrderIDPrefixDelivery+"-") {
			t.Fatalf("unexpected order id %q", saved.ID)
		}
		if saved.Status != entities.OrderStatusPendingPayment {
			t.Fatalf("expected pending_payment, got %s", saved.Status)
		}
	})

	t.Run("spot order clears the delivery location", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		u := NewOrderUseCase(repo, nil, entities.DefaultCatalog())

		var saved entities.Order
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) error {
				saved = o
				return nil
			})

		cmd := validCommand()
		cmd.Channel = entities.ChannelSpot
		cmd.PickupTime = "10:30"

		if _, err := u.Submit(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(saved.ID, entities.OrderIDPrefixSpot+"-") {
			t.Fatalf("unexpected order id %q", saved.ID)
		}
		if saved.DeliveryLocation != "" || saved.PickupTime != "10:30" {
			t.Fatalf("unexpected location fields: %+v", saved)
		}
	})

	t.Run("payment proof marks order pending verification", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		u := NewOrderUseCase(repo, nil, entities.DefaultCatalog())

		var saved entities.Order
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o entities.Order) error {
				saved = o
				return nil
			})

		cmd := validCommand()
		cmd.PaymentProofURL = "https://bucket/payment-proofs/x.png"

		if _, err := u.Submit(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Status != entities.OrderStatusPendingVerification {
			t.Fatalf("expected pending_verification, got %s", saved.Status)
		}
		if saved.PaymentProofURL != cmd.PaymentProofURL {
			t.Fatalf("unexpected proof url %q", saved.PaymentProofURL)
		}
	})

	t.Run("append failure wraps the persistence sentinel", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIOrderNotifier(ctrl)
		u := NewOrderUseCase(repo, notifier, entities.DefaultCatalog())

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("sheet unavailable"))

		outcome, err := u.Submit(context.Background(), validCommand())
		if !errors.Is(err, ErrOrderPersistenceFailed) {
			t.Fatalf("expected ErrOrderPersistenceFailed, got %v", err)
		}
		if outcome.RowAppended || outcome.NotificationSent {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		notifier := mock_interfaces.NewMockIOrderNotifier(ctrl)
		u := NewOrderUseCase(repo, notifier, entities.DefaultCatalog())

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyNewOrder(gomock.Any(), gomock.Any()).Return(errors.New("chat unreachable"))

		outcome, err := u.Submit(context.Background(), validCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.RowAppended || outcome.NotificationSent {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("nil notifier skips the notification", func(t *testing.T) {
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		u := NewOrderUseCase(repo, nil, entities.DefaultCatalog())

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		outcome, err := u.Submit(context.Background(), validCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.RowAppended || outcome.NotificationSent {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})
}

func TestOrderUseCase_GetInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	u := NewOrderUseCase(repo, nil, entities.DefaultCatalog())

	t.Run("found", func(t *testing.T) {
		want := entities.Order{ID: "ORDER-1-x", CustomerName: "Budi Santoso"}
		repo.EXPECT().FindByID(gomock.Any(), "ORDER-1-x").Return(want, true, nil)

		got, err := u.GetInvoice(context.Background(), "ORDER-1-x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID || got.CustomerName != want.CustomerName {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("trims the id before lookup", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "ORDER-1-x").Return(entities.Order{ID: "ORDER-1-x"}, true, nil)

		if _, err := u.GetInvoice(context.Background(), "  ORDER-1-x  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "ORDER-9-x").Return(entities.Order{}, false, nil)

		if _, err := u.GetInvoice(context.Background(), "ORDER-9-x"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("blank id rejected without a lookup", func(t *testing.T) {
		if _, err := u.GetInvoice(context.Background(), "   "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repoErr := errors.New("sheet unavailable")
		repo.EXPECT().FindByID(gomock.Any(), "ORDER-1-x").Return(entities.Order{}, false, repoErr)

		if _, err := u.GetInvoice(context.Background(), "ORDER-1-x"); !errors.Is(err, repoErr) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}
