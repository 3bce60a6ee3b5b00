package interfaces

import (
	"context"

	"lavajato/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The repository is the system of record; the lifecycle store keeps an
// in-memory copy that is only mutated after one of these calls succeeds.

type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	SetDeleted(ctx context.Context, id string, deleted bool) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}
