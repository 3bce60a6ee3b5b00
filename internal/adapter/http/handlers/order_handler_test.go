package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"lavajato/internal/adapter/http/handlers/mocks"
	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

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

	t.Run("validation error lists the missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "user-1").
			Return(entities.ServiceOrder{}, &usecase.ValidationError{Fields: []string{"Responsável", "Placa do carro"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %q", body["code"])
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Responsável")) {
			t.Fatalf("expected field list in message, got %s", w.Body.String())
		}
	})

	t.Run("duplicate sequence number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "").
			Return(entities.ServiceOrder{}, usecase.ErrDuplicateSequenceNumber)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"carro_numero":7}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created order is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "user-1").
			Return(entities.ServiceOrder{ID: "order-1", SequenceNumber: 7}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"responsavel":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"carro_numero":7`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID("missing").Return(entities.ServiceOrder{}, false)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_CompleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment method required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/complete", h.CompleteOrder)

		uc.EXPECT().Complete(gomock.Any(), "order-1", gomock.Any(), nil).
			Return(entities.ServiceOrder{}, usecase.ErrPaymentMethodRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/complete", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("multipart with file stages a pending invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/orders/:id/complete", h.CompleteOrder)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("payload", `{"forma_pagamento":"Crédito"}`); err != nil {
			t.Fatal(err)
		}
		fw, err := mw.CreateFormFile("nota_fiscal", "nota.pdf")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte("%PDF-1.4")); err != nil {
			t.Fatal(err)
		}
		mw.Close()

		uc.EXPECT().
			Complete(gomock.Any(), "order-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.ServiceOrderInput, pending *usecase.PendingInvoiceFile) (entities.ServiceOrder, error) {
				if in.PaymentMethod == nil || *in.PaymentMethod != entities.PaymentCredito {
					t.Fatalf("payment method not carried over: %+v", in.PaymentMethod)
				}
				if pending == nil || pending.Name != "nota.pdf" || len(pending.Content) == 0 {
					t.Fatalf("pending file not staged: %+v", pending)
				}
				return entities.ServiceOrder{ID: "order-1", Status: entities.OrderStatusProcessada}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/complete", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Trash(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("soft delete twice conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.DELETE("/v1/orders/:id", h.SoftDeleteOrder)

		uc.EXPECT().SoftDelete(gomock.Any(), "order-1").
			Return(entities.ServiceOrder{}, usecase.ErrOrderAlreadyInTrash)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("permanent delete returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.DELETE("/v1/orders/:id/permanent", h.PermanentlyDeleteOrder)

		uc.EXPECT().PermanentlyDelete(gomock.Any(), "order-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/order-1/permanent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_AttachInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders/:id/invoice", h.AttachInvoice)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/invoice", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upload failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc, mocks.NewMockIPixChargeUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/orders/:id/invoice", h.AttachInvoice)

		uc.EXPECT().AttachInvoice(gomock.Any(), "order-1", gomock.Any()).
			Return(entities.ServiceOrder{}, errors.Join(usecase.ErrAttachmentUpload, errors.New("s3 down")))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("nota_fiscal", "nota.jpg")
		fw.Write([]byte{0xFF, 0xD8})
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/invoice", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_CreatePixCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := mocks.NewMockIPixChargeUseCase(ctrl)
		h := NewServiceOrderHandler(mocks.NewMockIServiceOrderUseCase(ctrl), pix)

		r := gin.New()
		r.POST("/v1/orders/:id/pix", h.CreatePixCharge)

		pix.EXPECT().CreateCharge(gomock.Any(), "order-1").
			Return(entities.PixCharge{}, usecase.ErrPixGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/pix", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("charge created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := mocks.NewMockIPixChargeUseCase(ctrl)
		h := NewServiceOrderHandler(mocks.NewMockIServiceOrderUseCase(ctrl), pix)

		r := gin.New()
		r.POST("/v1/orders/:id/pix", h.CreatePixCharge)

		pix.EXPECT().CreateCharge(gomock.Any(), "order-1").
			Return(entities.PixCharge{ProviderPaymentID: "123", Status: "pending", QRCode: "000201"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/pix", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"provider_payment_id":"123"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
