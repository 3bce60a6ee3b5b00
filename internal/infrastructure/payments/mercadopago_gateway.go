package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates Pix charges through the Mercado Pago payments
// API. With PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK) set, no network call
// is made and a synthetic pending charge is returned, which keeps local
// development and CI off the sandbox.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[pix][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[pix][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, amount float64, description, externalReference string) (entities.PixCharge, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[pix][gateway] mock charge created provider_payment_id=%s amount=%.2f", id, amount)
		return entities.PixCharge{
			ProviderPaymentID: id,
			Status:            "pending",
			QRCode:            "00020126MOCK" + id,
			TicketURL:         "https://example.invalid/pix/" + id,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[pix][gateway] gateway not configured")
		return entities.PixCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[pix][gateway] create start amount=%.2f external_reference=%s", amount, externalReference)

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		PaymentMethodID:   "pix",
		ExternalReference: externalReference,
		Payer: &payment.PayerRequest{
			Email: getenvDefault("PIX_PAYER_EMAIL", "pagamentos@jjlavajato.com.br"),
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[pix][gateway] sdk create failed err=%v", err)
		return entities.PixCharge{}, err
	}
	log.Printf("[pix][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.PixCharge{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		QRCode:            resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      resp.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:         resp.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
