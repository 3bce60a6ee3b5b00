package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"lavajato/internal/domain/entities"
	"lavajato/internal/domain/pricing"
	"lavajato/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrOrderNotFound            = errors.New("service order not found")
	ErrInvalidOrderID           = errors.New("invalid service order id")
	ErrDuplicateSequenceNumber  = errors.New("duplicate sequence number")
	ErrPaymentMethodRequired    = errors.New("payment method required to complete the order")
	ErrAttachmentUpload         = errors.New("invoice attachment upload failed")
	ErrAttachmentStorageMissing = errors.New("attachment storage not configured")
	ErrOrderAlreadyInTrash      = errors.New("service order already in the trash")
	ErrOrderNotInTrash          = errors.New("service order not in the trash")
	ErrEmptyInvoiceFile         = errors.New("empty invoice file")
)

// ServiceOrderInput is a partial order payload. Nil fields keep the stored
// value on update; on create they fall back to defaults (next sequence number,
// pricing suggestion for the total).
type ServiceOrderInput struct {
	SequenceNumber          *int
	Timestamp               *time.Time
	ResponsiblePerson       *string
	VehicleModel            *string
	VehiclePlate            *string
	VehicleTypes            []entities.VehicleType
	Services                []entities.ServiceName
	Total                   *float64
	TipAmount               *float64
	PaymentMethod           *entities.PaymentMethod
	PaymentOtherDescription *string
	Notes                   *string
	InvoiceAttachment       *entities.InvoiceAttachment
}

// PendingInvoiceFile is a proof-of-payment file staged by the caller but not
// yet uploaded to the object store.
type PendingInvoiceFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// IServiceOrderUseCase exposes the order lifecycle operations.
//
// The implementation owns the in-memory active/trashed collections; they are
// only mutated after the repository confirms the corresponding write, so a
// failed round trip never leaves the cache ahead of the system of record.

type IServiceOrderUseCase interface {
	Refresh(ctx context.Context) error
	ActiveOrders() []entities.ServiceOrder
	TrashedOrders() []entities.ServiceOrder
	GetByID(id string) (entities.ServiceOrder, bool)
	NextSequenceNumber() int
	Create(ctx context.Context, in ServiceOrderInput, createdBy string) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, in ServiceOrderInput) (entities.ServiceOrder, error)
	Complete(ctx context.Context, id string, in ServiceOrderInput, pending *PendingInvoiceFile) (entities.ServiceOrder, error)
	Reopen(ctx context.Context, id string) (entities.ServiceOrder, error)
	SoftDelete(ctx context.Context, id string) (entities.ServiceOrder, error)
	Restore(ctx context.Context, id string) (entities.ServiceOrder, error)
	PermanentlyDelete(ctx context.Context, id string) error
	AttachInvoice(ctx context.Context, id string, pending PendingInvoiceFile) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo    interfaces.IServiceOrderRepository
	storage interfaces.IAttachmentStorage
	log     *zap.Logger

	mu      sync.RWMutex
	active  []entities.ServiceOrder
	trashed []entities.ServiceOrder
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, storage interfaces.IAttachmentStorage, log *zap.Logger) *ServiceOrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceOrderUseCase{repo: repo, storage: storage, log: log}
}

// Refresh replaces both in-memory collections with the repository contents.
// Also the reaction to change notifications: no incremental merge, just a
// full re-fetch.
func (u *ServiceOrderUseCase) Refresh(ctx context.Context) error {
	orders, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("refreshing orders failed", zap.Error(err))
		return err
	}

	var active, trashed []entities.ServiceOrder
	for _, o := range orders {
		if o.Deleted {
			trashed = append(trashed, o)
		} else {
			active = append(active, o)
		}
	}

	u.mu.Lock()
	u.active = active
	u.trashed = trashed
	u.mu.Unlock()

	u.log.Info("orders refreshed", zap.Int("active", len(active)), zap.Int("trashed", len(trashed)))
	return nil
}

func (u *ServiceOrderUseCase) ActiveOrders() []entities.ServiceOrder {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entities.ServiceOrder, len(u.active))
	copy(out, u.active)
	return out
}

func (u *ServiceOrderUseCase) TrashedOrders() []entities.ServiceOrder {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entities.ServiceOrder, len(u.trashed))
	copy(out, u.trashed)
	return out
}

func (u *ServiceOrderUseCase) GetByID(id string) (entities.ServiceOrder, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, o := range u.active {
		if o.ID == id {
			return o, true
		}
	}
	for _, o := range u.trashed {
		if o.ID == id {
			return o, true
		}
	}
	return entities.ServiceOrder{}, false
}

// NextSequenceNumber is max(sequence numbers of active and trashed orders)+1,
// or 1 when both collections are empty. Recomputed on every call, never
// cached.
func (u *ServiceOrderUseCase) NextSequenceNumber() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.nextSequenceNumberLocked()
}

func (u *ServiceOrderUseCase) nextSequenceNumberLocked() int {
	max := 0
	for _, o := range u.active {
		if o.SequenceNumber > max {
			max = o.SequenceNumber
		}
	}
	for _, o := range u.trashed {
		if o.SequenceNumber > max {
			max = o.SequenceNumber
		}
	}
	return max + 1
}

// sequenceTakenLocked checks active and trashed orders together; a trashed
// order still reserves its number.
func (u *ServiceOrderUseCase) sequenceTakenLocked(seq int, excludeID string) bool {
	for _, o := range u.active {
		if o.SequenceNumber == seq && o.ID != excludeID {
			return true
		}
	}
	for _, o := range u.trashed {
		if o.SequenceNumber == seq && o.ID != excludeID {
			return true
		}
	}
	return false
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in ServiceOrderInput, createdBy string) (entities.ServiceOrder, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	seq := u.nextSequenceNumberLocked()
	if in.SequenceNumber != nil {
		seq = *in.SequenceNumber
	}
	if u.sequenceTakenLocked(seq, "") {
		u.log.Warn("duplicate sequence number on create", zap.Int("sequence_number", seq))
		return entities.ServiceOrder{}, ErrDuplicateSequenceNumber
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		SequenceNumber: seq,
		VehicleTypes:   in.VehicleTypes,
		Services:       in.Services,
		Status:         entities.OrderStatusEmProcessamento,
		CreatedBy:      strings.TrimSpace(createdBy),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Timestamp != nil {
		o.Timestamp = *in.Timestamp
	}
	if in.ResponsiblePerson != nil {
		o.ResponsiblePerson = strings.TrimSpace(*in.ResponsiblePerson)
	}
	if in.VehicleModel != nil {
		o.VehicleModel = strings.TrimSpace(*in.VehicleModel)
	}
	if in.VehiclePlate != nil {
		o.VehiclePlate = strings.TrimSpace(*in.VehiclePlate)
	}
	if in.PaymentMethod != nil {
		o.PaymentMethod = *in.PaymentMethod
	}
	if in.PaymentOtherDescription != nil {
		o.PaymentOtherDescription = strings.TrimSpace(*in.PaymentOtherDescription)
	}
	if in.Notes != nil {
		o.Notes = strings.TrimSpace(*in.Notes)
	}
	o.InvoiceAttachment = in.InvoiceAttachment

	// The suggestion is advisory: it only fills the total when the caller
	// didn't provide one, and the tip defaults to zero alongside it.
	totalSet := in.Total != nil
	tipSet := in.TipAmount != nil
	if totalSet {
		o.Total = *in.Total
	} else if suggested, ok := pricing.Suggest(o.VehicleTypes, o.Services); ok {
		o.Total = suggested
		totalSet = true
		if !tipSet {
			o.TipAmount = 0
			tipSet = true
		}
	}
	if tipSet && in.TipAmount != nil {
		o.TipAmount = *in.TipAmount
	}

	// An order created with a payment method already chosen is completed
	// immediately.
	if o.PaymentMethod != "" {
		o.Status = entities.OrderStatusProcessada
	}

	if fields := validateOrder(o, totalSet, tipSet, false); len(fields) > 0 {
		return entities.ServiceOrder{}, &ValidationError{Fields: fields}
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.log.Error("creating order failed", zap.Int("sequence_number", seq), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.active = append(u.active, created)
	u.log.Info("order created",
		zap.String("order_id", created.ID),
		zap.Int("sequence_number", created.SequenceNumber),
		zap.String("status", string(created.Status)))
	return created, nil
}

// merge lays the supplied fields over the stored order. Omitted fields always
// keep their previous value.
func merge(existing entities.ServiceOrder, in ServiceOrderInput) entities.ServiceOrder {
	o := existing
	if in.SequenceNumber != nil {
		o.SequenceNumber = *in.SequenceNumber
	}
	if in.Timestamp != nil {
		o.Timestamp = *in.Timestamp
	}
	if in.ResponsiblePerson != nil {
		o.ResponsiblePerson = strings.TrimSpace(*in.ResponsiblePerson)
	}
	if in.VehicleModel != nil {
		o.VehicleModel = strings.TrimSpace(*in.VehicleModel)
	}
	if in.VehiclePlate != nil {
		o.VehiclePlate = strings.TrimSpace(*in.VehiclePlate)
	}
	if in.VehicleTypes != nil {
		o.VehicleTypes = in.VehicleTypes
	}
	if in.Services != nil {
		o.Services = in.Services
	}
	if in.Total != nil {
		o.Total = *in.Total
	}
	if in.TipAmount != nil {
		o.TipAmount = *in.TipAmount
	}
	if in.PaymentMethod != nil {
		o.PaymentMethod = *in.PaymentMethod
	}
	if in.PaymentOtherDescription != nil {
		o.PaymentOtherDescription = strings.TrimSpace(*in.PaymentOtherDescription)
	}
	if in.Notes != nil {
		o.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.InvoiceAttachment != nil {
		o.InvoiceAttachment = in.InvoiceAttachment
	}
	return o
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in ServiceOrderInput) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.active, id)
	if idx < 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	merged := merge(u.active[idx], in)
	if merged.SequenceNumber != u.active[idx].SequenceNumber && u.sequenceTakenLocked(merged.SequenceNumber, id) {
		return entities.ServiceOrder{}, ErrDuplicateSequenceNumber
	}
	merged.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, merged)
	if err != nil {
		u.log.Error("updating order failed", zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.active[idx] = updated
	u.log.Info("order updated", zap.String("order_id", id), zap.Int("sequence_number", updated.SequenceNumber))
	return updated, nil
}

// Complete forces the order into "processada". It demands a payment method,
// runs the full validation (invoice rule included) and, when a local file is
// pending, uploads it before the persisted update.
func (u *ServiceOrderUseCase) Complete(ctx context.Context, id string, in ServiceOrderInput, pending *PendingInvoiceFile) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.active, id)
	if idx < 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	merged := merge(u.active[idx], in)
	if merged.SequenceNumber != u.active[idx].SequenceNumber && u.sequenceTakenLocked(merged.SequenceNumber, id) {
		return entities.ServiceOrder{}, ErrDuplicateSequenceNumber
	}
	if merged.PaymentMethod == "" {
		return entities.ServiceOrder{}, ErrPaymentMethodRequired
	}
	if fields := validateOrder(merged, true, true, pending != nil); len(fields) > 0 {
		return entities.ServiceOrder{}, &ValidationError{Fields: fields}
	}

	if pending != nil {
		attachment, err := u.uploadInvoice(ctx, id, *pending)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		merged.InvoiceAttachment = &attachment
	}

	merged.Status = entities.OrderStatusProcessada
	merged.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, merged)
	if err != nil {
		u.log.Error("completing order failed", zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.active[idx] = updated
	u.log.Info("order completed",
		zap.String("order_id", id),
		zap.String("payment_method", string(updated.PaymentMethod)))
	return updated, nil
}

// Reopen puts a completed order back into "em processamento" and clears the
// payment method and its free-text description. Nothing else changes.
func (u *ServiceOrderUseCase) Reopen(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.active, id)
	if idx < 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	reopened := u.active[idx]
	reopened.Status = entities.OrderStatusEmProcessamento
	reopened.PaymentMethod = ""
	reopened.PaymentOtherDescription = ""
	reopened.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, reopened)
	if err != nil {
		u.log.Error("reopening order failed", zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.active[idx] = updated
	u.log.Info("order reopened", zap.String("order_id", id))
	return updated, nil
}

// SoftDelete marks the order deleted and moves it to the trash. Attachment
// storage is untouched so a restore brings everything back.
func (u *ServiceOrderUseCase) SoftDelete(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.active, id)
	if idx < 0 {
		if indexByID(u.trashed, id) >= 0 {
			return entities.ServiceOrder{}, ErrOrderAlreadyInTrash
		}
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	updated, err := u.repo.SetDeleted(ctx, id, true)
	if err != nil {
		u.log.Error("soft-deleting order failed", zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.active = append(u.active[:idx], u.active[idx+1:]...)
	u.trashed = append(u.trashed, updated)
	u.log.Info("order moved to trash", zap.String("order_id", id))
	return updated, nil
}

func (u *ServiceOrderUseCase) Restore(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.trashed, id)
	if idx < 0 {
		if indexByID(u.active, id) >= 0 {
			return entities.ServiceOrder{}, ErrOrderNotInTrash
		}
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	updated, err := u.repo.SetDeleted(ctx, id, false)
	if err != nil {
		u.log.Error("restoring order failed", zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.trashed = append(u.trashed[:idx], u.trashed[idx+1:]...)
	u.active = append(u.active, updated)
	u.log.Info("order restored", zap.String("order_id", id))
	return updated, nil
}

// PermanentlyDelete removes a trashed order from the repository and then
// cleans up its attachment blob. The blob removal is best effort: the record
// is already gone, so a storage failure is only logged.
func (u *ServiceOrderUseCase) PermanentlyDelete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.trashed, id)
	if idx < 0 {
		if indexByID(u.active, id) >= 0 {
			return ErrOrderNotInTrash
		}
		return ErrOrderNotFound
	}
	order := u.trashed[idx]

	if err := u.repo.Delete(ctx, id); err != nil {
		u.log.Error("permanently deleting order failed", zap.String("order_id", id), zap.Error(err))
		return err
	}

	u.trashed = append(u.trashed[:idx], u.trashed[idx+1:]...)
	u.log.Info("order permanently deleted", zap.String("order_id", id))

	if order.InvoiceAttachment != nil && order.InvoiceAttachment.StoragePath != "" && u.storage != nil {
		if err := u.storage.Remove(ctx, order.InvoiceAttachment.StoragePath); err != nil {
			u.log.Warn("orphaned invoice attachment",
				zap.String("order_id", id),
				zap.String("storage_path", order.InvoiceAttachment.StoragePath),
				zap.Error(err))
		}
	}
	return nil
}

// AttachInvoice uploads a proof-of-payment file for an existing order and
// persists the resulting reference. The record is never left pointing at a
// blob that failed to upload.
func (u *ServiceOrderUseCase) AttachInvoice(ctx context.Context, id string, pending PendingInvoiceFile) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if len(pending.Content) == 0 {
		return entities.ServiceOrder{}, ErrEmptyInvoiceFile
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := indexByID(u.active, id)
	if idx < 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	attachment, err := u.uploadInvoice(ctx, id, pending)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	withAttachment := u.active[idx]
	withAttachment.InvoiceAttachment = &attachment
	withAttachment.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, withAttachment)
	if err != nil {
		u.log.Error("persisting invoice reference failed", zap.String("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	u.active[idx] = updated
	u.log.Info("invoice attached", zap.String("order_id", id), zap.String("storage_path", attachment.StoragePath))
	return updated, nil
}

func (u *ServiceOrderUseCase) uploadInvoice(ctx context.Context, orderID string, pending PendingInvoiceFile) (entities.InvoiceAttachment, error) {
	if u.storage == nil {
		return entities.InvoiceAttachment{}, ErrAttachmentStorageMissing
	}
	attachment, err := u.storage.Upload(ctx, orderID, pending.Name, pending.ContentType, pending.Content)
	if err != nil {
		u.log.Error("invoice upload failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.InvoiceAttachment{}, errors.Join(ErrAttachmentUpload, err)
	}
	return attachment, nil
}

func indexByID(orders []entities.ServiceOrder, id string) int {
	for i, o := range orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
