package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPixGatewayNotConfigured = errors.New("pix gateway not configured")
	ErrOrderNotCompleted       = errors.New("order is not completed")
	ErrOrderNotPix             = errors.New("order is not settled via Pix")
)

// IPixChargeUseCase creates a Pix charge for a completed order through the
// external payment provider.

type IPixChargeUseCase interface {
	CreateCharge(ctx context.Context, orderID string) (entities.PixCharge, error)
}

type orderFinder interface {
	GetByID(id string) (entities.ServiceOrder, bool)
}

type PixChargeUseCase struct {
	orders  orderFinder
	gateway interfaces.IPixGateway
	log     *zap.Logger
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(orders orderFinder, gateway interfaces.IPixGateway, log *zap.Logger) *PixChargeUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PixChargeUseCase{orders: orders, gateway: gateway, log: log}
}

// CreateCharge charges the stored order total. The order id doubles as the
// provider's external reference so events can be reconciled later.
func (u *PixChargeUseCase) CreateCharge(ctx context.Context, orderID string) (entities.PixCharge, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PixCharge{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		u.log.Warn("pix charge requested without a configured gateway", zap.String("order_id", orderID))
		return entities.PixCharge{}, ErrPixGatewayNotConfigured
	}

	order, ok := u.orders.GetByID(orderID)
	if !ok {
		return entities.PixCharge{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusProcessada {
		return entities.PixCharge{}, ErrOrderNotCompleted
	}
	if order.PaymentMethod != entities.PaymentPix {
		return entities.PixCharge{}, ErrOrderNotPix
	}

	description := fmt.Sprintf("Ordem %d - %s", order.SequenceNumber, order.VehicleModel)
	charge, err := u.gateway.CreatePixCharge(ctx, order.Total, description, order.ID)
	if err != nil {
		u.log.Error("pix charge failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.PixCharge{}, err
	}

	u.log.Info("pix charge created",
		zap.String("order_id", orderID),
		zap.String("provider_payment_id", charge.ProviderPaymentID),
		zap.String("provider_status", charge.Status))
	return charge, nil
}
