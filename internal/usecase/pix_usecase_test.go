package usecase

import (
	"context"
	"errors"
	"testing"

	"lavajato/internal/domain/entities"
	mock_interfaces "lavajato/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubOrderFinder map[string]entities.ServiceOrder

func (s stubOrderFinder) GetByID(id string) (entities.ServiceOrder, bool) {
	o, ok := s[id]
	return o, ok
}

func TestPixChargeUseCase_CreateCharge(t *testing.T) {
	completed := entities.ServiceOrder{
		ID:             "order-1",
		SequenceNumber: 7,
		VehicleModel:   "Gol",
		Total:          40,
		PaymentMethod:  entities.PaymentPix,
		Status:         entities.OrderStatusProcessada,
	}

	t.Run("charges the order total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		uc := NewPixChargeUseCase(stubOrderFinder{"order-1": completed}, gateway, nil)

		gateway.EXPECT().CreatePixCharge(gomock.Any(), 40.0, "Ordem 7 - Gol", "order-1").
			Return(entities.PixCharge{ProviderPaymentID: "123", Status: "pending"}, nil)

		charge, err := uc.CreateCharge(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if charge.ProviderPaymentID != "123" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
	})

	t.Run("missing gateway", func(t *testing.T) {
		uc := NewPixChargeUseCase(stubOrderFinder{}, nil, nil)
		if _, err := uc.CreateCharge(context.Background(), "order-1"); !errors.Is(err, ErrPixGatewayNotConfigured) {
			t.Fatalf("expected ErrPixGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("open orders cannot be charged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)

		open := completed
		open.Status = entities.OrderStatusEmProcessamento
		uc := NewPixChargeUseCase(stubOrderFinder{"order-1": open}, gateway, nil)

		if _, err := uc.CreateCharge(context.Background(), "order-1"); !errors.Is(err, ErrOrderNotCompleted) {
			t.Fatalf("expected ErrOrderNotCompleted, got %v", err)
		}
	})

	t.Run("non pix orders are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)

		cash := completed
		cash.PaymentMethod = entities.PaymentDinheiro
		uc := NewPixChargeUseCase(stubOrderFinder{"order-1": cash}, gateway, nil)

		if _, err := uc.CreateCharge(context.Background(), "order-1"); !errors.Is(err, ErrOrderNotPix) {
			t.Fatalf("expected ErrOrderNotPix, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		uc := NewPixChargeUseCase(stubOrderFinder{}, gateway, nil)

		if _, err := uc.CreateCharge(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("gateway failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPixGateway(ctrl)
		uc := NewPixChargeUseCase(stubOrderFinder{"order-1": completed}, gateway, nil)

		gateway.EXPECT().CreatePixCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.PixCharge{}, errors.New("provider down"))

		if _, err := uc.CreateCharge(context.Background(), "order-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}
