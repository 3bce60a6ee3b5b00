package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	request "lavajato/internal/adapter/http/dto/request"
	response "lavajato/internal/adapter/http/dto/response"
	"lavajato/internal/usecase"
	"lavajato/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errMissingInvoiceFile  = pkg.NewDomainErrorSimple("MISSING_INVOICE_FILE", "Missing nota_fiscal file", http.StatusBadRequest)
)

// ServiceOrderHandler handles the order lifecycle endpoints: listing, create,
// partial update, complete/reopen, the trash operations and the proof of
// payment upload.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
	pix     usecase.IPixChargeUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, pix usecase.IPixChargeUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, pix: pix}
}

// ListOrders returns every active (non-trashed) order.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceOrders(h.usecase.ActiveOrders()))
}

// ListTrash returns the soft-deleted orders.
func (h *ServiceOrderHandler) ListTrash(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceOrders(h.usecase.TrashedOrders()))
}

// NextSequenceNumber returns the number the next created order will get by
// default. It is advisory: a concurrent create may take it first.
func (h *ServiceOrderHandler) NextSequenceNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"carro_numero": h.usecase.NextSequenceNumber()})
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.usecase.GetByID(c.Param("id"))
	if !ok {
		appErr := mapOrderError(usecase.ErrOrderNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), userID(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// UpdateOrder applies a partial update: only the fields present in the
// payload change, everything else keeps its stored value.
func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// CompleteOrder marks the order as processed. The body is either a JSON
// ServiceOrderRequest or a multipart form with a "payload" JSON field plus an
// optional "nota_fiscal" file, uploaded before the order is persisted.
func (h *ServiceOrderHandler) CompleteOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	var pending *usecase.PendingInvoiceFile

	if isMultipart(c) {
		raw := c.PostForm("payload")
		if raw != "" {
			if err := bindJSONString(raw, &payload); err != nil {
				c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
				return
			}
		}

		fileHeader, err := c.FormFile("nota_fiscal")
		if err == nil {
			pending, err = readInvoiceFile(fileHeader)
			if err != nil {
				appErr := mapOrderError(err)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
		}
	} else if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.ToInput(), pending)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ReopenOrder moves a processed order back to open and clears its payment
// method.
func (h *ServiceOrderHandler) ReopenOrder(c *gin.Context) {
	order, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// SoftDeleteOrder moves the order to the trash.
func (h *ServiceOrderHandler) SoftDeleteOrder(c *gin.Context) {
	order, err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// RestoreOrder moves a trashed order back to the active list unchanged.
func (h *ServiceOrderHandler) RestoreOrder(c *gin.Context) {
	order, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// PermanentlyDeleteOrder removes a trashed order for good, including its
// stored invoice attachment.
func (h *ServiceOrderHandler) PermanentlyDeleteOrder(c *gin.Context) {
	if err := h.usecase.PermanentlyDelete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachInvoice uploads a proof-of-payment file for an existing order.
func (h *ServiceOrderHandler) AttachInvoice(c *gin.Context) {
	fileHeader, err := c.FormFile("nota_fiscal")
	if err != nil {
		c.JSON(errMissingInvoiceFile.HTTPStatus, errMissingInvoiceFile.ToHTTPError())
		return
	}

	pending, err := readInvoiceFile(fileHeader)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.AttachInvoice(c.Request.Context(), c.Param("id"), *pending)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// CreatePixCharge creates a Pix charge for a completed order paid with
// Código QR Pix.
func (h *ServiceOrderHandler) CreatePixCharge(c *gin.Context) {
	charge, err := h.pix.CreateCharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPixCharge(charge))
}

func mapOrderError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateSequenceNumber):
		return pkg.NewDomainErrorSimple("DUPLICATE_SEQUENCE_NUMBER", "Sequence number already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMethodRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_REQUIRED", "Payment method required to complete the order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderAlreadyInTrash):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_IN_TRASH", "Service order already in the trash", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotInTrash):
		return pkg.NewDomainErrorSimple("ORDER_NOT_IN_TRASH", "Service order is not in the trash", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyInvoiceFile):
		return pkg.NewDomainErrorSimple("EMPTY_INVOICE_FILE", "Empty nota_fiscal file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentStorageMissing):
		return pkg.NewDomainErrorSimple("ATTACHMENT_STORAGE_UNAVAILABLE", "Attachment storage not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrAttachmentUpload):
		return pkg.NewDomainError("ATTACHMENT_UPLOAD_FAILED", "Failed to upload the nota_fiscal file", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPixGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PIX_GATEWAY_UNAVAILABLE", "Pix gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotCompleted):
		return pkg.NewDomainErrorSimple("ORDER_NOT_COMPLETED", "Order must be completed before charging", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotPix):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PIX", "Order payment method is not Código QR Pix", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func readInvoiceFile(fh *multipart.FileHeader) (*usecase.PendingInvoiceFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &usecase.PendingInvoiceFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// userID reads the acting user from the X-User-Id header set by the frontend
// after authentication. Empty when the request is anonymous.
func userID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-User-Id"))
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func bindJSONString(raw string, out any) error {
	return json.Unmarshal([]byte(raw), out)
}
