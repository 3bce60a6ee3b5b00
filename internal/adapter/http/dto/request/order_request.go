package request

import (
	"time"

	"lavajato/internal/domain/entities"
	"lavajato/internal/usecase"
)

// ServiceOrderRequest is the JSON payload for creating, updating or
// completing an order. All fields are optional; absent fields keep their
// stored value (update) or fall back to defaults (create). The attribute
// names match the persisted record so payloads read the same as the stored
// rows.
type ServiceOrderRequest struct {
	SequenceNumber          *int       `json:"carro_numero"`
	Timestamp               *time.Time `json:"data_hora"`
	ResponsiblePerson       *string    `json:"responsavel"`
	VehicleModel            *string    `json:"carro_modelo"`
	VehiclePlate            *string    `json:"carro_placa"`
	VehicleTypes            []string   `json:"tipo_veiculo"`
	Services                []string   `json:"servicos"`
	Total                   *float64   `json:"total"`
	TipAmount               *float64   `json:"caixinha"`
	PaymentMethod           *string    `json:"forma_pagamento"`
	PaymentOtherDescription *string    `json:"descricao_outros"`
	Notes                   *string    `json:"observacoes"`
}

func (r ServiceOrderRequest) ToInput() usecase.ServiceOrderInput {
	in := usecase.ServiceOrderInput{
		SequenceNumber:          r.SequenceNumber,
		Timestamp:               r.Timestamp,
		ResponsiblePerson:       r.ResponsiblePerson,
		VehicleModel:            r.VehicleModel,
		VehiclePlate:            r.VehiclePlate,
		Total:                   r.Total,
		TipAmount:               r.TipAmount,
		PaymentOtherDescription: r.PaymentOtherDescription,
		Notes:                   r.Notes,
	}

	if r.VehicleTypes != nil {
		in.VehicleTypes = make([]entities.VehicleType, len(r.VehicleTypes))
		for i, v := range r.VehicleTypes {
			in.VehicleTypes[i] = entities.VehicleType(v)
		}
	}
	if r.Services != nil {
		in.Services = make([]entities.ServiceName, len(r.Services))
		for i, s := range r.Services {
			in.Services[i] = entities.ServiceName(s)
		}
	}
	if r.PaymentMethod != nil {
		pm := entities.PaymentMethod(*r.PaymentMethod)
		in.PaymentMethod = &pm
	}

	return in
}
