package response

import "lavajato/internal/domain/entities"

type PixChargeResponse struct {
	ProviderPaymentID string `json:"provider_payment_id"`
	Status            string `json:"status"`
	QRCode            string `json:"qr_code,omitempty"`
	QRCodeBase64      string `json:"qr_code_base64,omitempty"`
	TicketURL         string `json:"ticket_url,omitempty"`
}

func FromPixCharge(p entities.PixCharge) PixChargeResponse {
	return PixChargeResponse{
		ProviderPaymentID: p.ProviderPaymentID,
		Status:            p.Status,
		QRCode:            p.QRCode,
		QRCodeBase64:      p.QRCodeBase64,
		TicketURL:         p.TicketURL,
	}
}
