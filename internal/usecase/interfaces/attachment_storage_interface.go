package interfaces

import (
	"context"

	"lavajato/internal/domain/entities"
)

// IAttachmentStorage abstracts the object store holding proof-of-payment
// files (e.g. S3).
//
// Upload derives a collision-free storage path from the order id and file
// name and returns the stored reference. Remove is a no-op for an empty path.
type IAttachmentStorage interface {
	Upload(ctx context.Context, orderID, fileName, contentType string, content []byte) (entities.InvoiceAttachment, error)
	Remove(ctx context.Context, storagePath string) error
}
