package entities

import "time"

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - Orders open as "em processamento" and are completed ("processada") once a
//     payment method is chosen.
//   - A completed order can be reopened, which clears its payment method.

type OrderStatus string

const (
	OrderStatusEmProcessamento OrderStatus = "em processamento"
	OrderStatusProcessada      OrderStatus = "processada"
)

// VehicleType is one of the vehicle classes priced by the wash.
type VehicleType string

const (
	VehicleUberTaxi     VehicleType = "Uber/Táxi"
	VehicleCarroGrande  VehicleType = "Carro Grande"
	VehicleCarroPequeno VehicleType = "Carro Pequeno"
	VehicleMoto         VehicleType = "Moto"
	VehicleVan          VehicleType = "Van"
	VehicleHunter       VehicleType = "Hunter"
)

// ServiceName is one of the services offered by the wash.
type ServiceName string

const (
	ServiceEstacionamento       ServiceName = "Estacionamento"
	ServiceLavagemGeral         ServiceName = "Lavagem Geral"
	ServiceDuchaComSecagem      ServiceName = "Ducha com Secagem"
	ServiceDuchaSemSecagem      ServiceName = "Ducha sem Secagem"
	ServiceLimpezaInterna       ServiceName = "Limpeza interna"
	ServiceAspiracao            ServiceName = "Aspiração"
	ServiceHigienizacao         ServiceName = "Higienização"
	ServiceAplicacaoDeCera      ServiceName = "Aplicação de cera"
	ServiceHidratacaoDeBancos   ServiceName = "Hidratação de Bancos"
	ServiceAplicacaoDeProduto   ServiceName = "Aplicação de Produto"
	ServicePolimento            ServiceName = "Polimento"
	ServiceRevitalizacaoDeFarol ServiceName = "Revitalização de Faróis"
)

// PaymentMethod is how the customer settled a completed order.
//
// "Código QR Pix", "Crédito" and "Débito" require a proof-of-payment file
// (invoice attachment) before the order can be completed.

type PaymentMethod string

const (
	PaymentDinheiro PaymentMethod = "Dinheiro"
	PaymentCredito  PaymentMethod = "Crédito"
	PaymentDebito   PaymentMethod = "Débito"
	PaymentPix      PaymentMethod = "Código QR Pix"
	PaymentOutros   PaymentMethod = "Outros"
)

// RequiresInvoice reports whether the payment method demands an attached
// proof of payment.
func (m PaymentMethod) RequiresInvoice() bool {
	return m == PaymentCredito || m == PaymentDebito || m == PaymentPix
}

// InvoiceAttachment references the proof-of-payment file stored in the
// invoice bucket.
type InvoiceAttachment struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	StoragePath string `json:"storage_path"`
}

// ServiceOrder is a single car-wash job record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SequenceNumber is the human-facing order number, unique across active and
// trashed orders. Deleted=true moves the order to the trash without erasing
// it; permanent removal deletes the item and its attachment.

type ServiceOrder struct {
	ID                      string             `json:"id"`
	SequenceNumber          int                `json:"sequence_number"`
	Timestamp               time.Time          `json:"timestamp"`
	ResponsiblePerson       string             `json:"responsible_person"`
	VehicleModel            string             `json:"vehicle_model"`
	VehiclePlate            string             `json:"vehicle_plate"`
	VehicleTypes            []VehicleType      `json:"vehicle_types"`
	Services                []ServiceName      `json:"services"`
	Total                   float64            `json:"total"`
	TipAmount               float64            `json:"tip_amount"`
	PaymentMethod           PaymentMethod      `json:"payment_method"`
	PaymentOtherDescription string             `json:"payment_other_description"`
	Notes                   string             `json:"notes"`
	InvoiceAttachment       *InvoiceAttachment `json:"invoice_attachment,omitempty"`
	Status                  OrderStatus        `json:"status"`
	Deleted                 bool               `json:"deleted"`
	CreatedBy               string             `json:"created_by"`
	CreatedAt               time.Time          `json:"created_at"`
	UpdatedAt               time.Time          `json:"updated_at"`
}

// PixCharge is the result of creating a Pix payment for an order through the
// external payment provider.
type PixCharge struct {
	ProviderPaymentID string `json:"provider_payment_id"`
	Status            string `json:"status"`
	QRCode            string `json:"qr_code"`
	QRCodeBase64      string `json:"qr_code_base64"`
	TicketURL         string `json:"ticket_url"`
}
