package interfaces

import (
	"context"

	"lavajato/internal/domain/entities"
)

// IPixGateway abstracts the external payment provider (e.g. Mercado Pago)
// used to create a Pix charge for an order settled via "Código QR Pix".
type IPixGateway interface {
	CreatePixCharge(ctx context.Context, amount float64, description, externalReference string) (entities.PixCharge, error)
}
