package response

import (
	"time"

	"lavajato/internal/domain/entities"
)

type InvoiceAttachmentResponse struct {
	Name        string `json:"nota_fiscal"`
	URL         string `json:"nota_fiscal_url"`
	StoragePath string `json:"nota_fiscal_path"`
}

type ServiceOrderResponse struct {
	ID                      string                     `json:"id"`
	SequenceNumber          int                        `json:"carro_numero"`
	Timestamp               time.Time                  `json:"data_hora"`
	ResponsiblePerson       string                     `json:"responsavel"`
	VehicleModel            string                     `json:"carro_modelo"`
	VehiclePlate            string                     `json:"carro_placa"`
	VehicleTypes            []string                   `json:"tipo_veiculo"`
	Services                []string                   `json:"servicos"`
	Total                   float64                    `json:"total"`
	TipAmount               float64                    `json:"caixinha"`
	PaymentMethod           string                     `json:"forma_pagamento"`
	PaymentOtherDescription string                     `json:"descricao_outros,omitempty"`
	Notes                   string                     `json:"observacoes,omitempty"`
	InvoiceAttachment       *InvoiceAttachmentResponse `json:"nota_fiscal_anexo,omitempty"`
	Status                  string                     `json:"status"`
	Deleted                 bool                       `json:"is_deleted"`
	CreatedBy               string                     `json:"created_by,omitempty"`
	CreatedAt               time.Time                  `json:"created_at"`
	UpdatedAt               time.Time                  `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:                      o.ID,
		SequenceNumber:          o.SequenceNumber,
		Timestamp:               o.Timestamp,
		ResponsiblePerson:       o.ResponsiblePerson,
		VehicleModel:            o.VehicleModel,
		VehiclePlate:            o.VehiclePlate,
		VehicleTypes:            make([]string, 0, len(o.VehicleTypes)),
		Services:                make([]string, 0, len(o.Services)),
		Total:                   o.Total,
		TipAmount:               o.TipAmount,
		PaymentMethod:           string(o.PaymentMethod),
		PaymentOtherDescription: o.PaymentOtherDescription,
		Notes:                   o.Notes,
		Status:                  string(o.Status),
		Deleted:                 o.Deleted,
		CreatedBy:               o.CreatedBy,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
	for _, v := range o.VehicleTypes {
		resp.VehicleTypes = append(resp.VehicleTypes, string(v))
	}
	for _, s := range o.Services {
		resp.Services = append(resp.Services, string(s))
	}
	if o.InvoiceAttachment != nil {
		resp.InvoiceAttachment = &InvoiceAttachmentResponse{
			Name:        o.InvoiceAttachment.Name,
			URL:         o.InvoiceAttachment.URL,
			StoragePath: o.InvoiceAttachment.StoragePath,
		}
	}
	return resp
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
