package usecase

import (
	"strings"

	"lavajato/internal/domain/entities"
)

// Human-facing labels for the required fields, reported in declaration order
// so the UI can show every problem at once.
const (
	FieldDataHora         = "Data/Hora"
	FieldResponsavel      = "Responsável"
	FieldNumeracaoDoCarro = "Numeração do carro"
	FieldModeloDoCarro    = "Modelo do carro"
	FieldPlacaDoCarro     = "Placa do carro"
	FieldValorTotal       = "Valor total"
	FieldCaixinha         = "Caixinha"
	FieldTipoDeVeiculo    = "Tipo de Veículo"
	FieldServicos         = "Serviços Prestados"
	FieldNotaFiscal       = "Nota Fiscal do Pagamento"
)

// ValidationError carries every failed field of a candidate order, in the
// order the checks are declared. It is resolved before any network call.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid required fields: " + strings.Join(e.Fields, ", ")
}

// validateOrder collects all rule violations for a candidate order without
// short-circuiting.
//
// totalSet/tipSet report whether the monetary fields were ever provided (zero
// is a legal value, absence is not). hasPendingFile satisfies the invoice rule
// when a local file is staged but not yet uploaded.
func validateOrder(o entities.ServiceOrder, totalSet, tipSet, hasPendingFile bool) []string {
	var fields []string

	if o.Timestamp.IsZero() {
		fields = append(fields, FieldDataHora)
	}
	if strings.TrimSpace(o.ResponsiblePerson) == "" {
		fields = append(fields, FieldResponsavel)
	}
	if o.SequenceNumber <= 0 {
		fields = append(fields, FieldNumeracaoDoCarro)
	}
	if strings.TrimSpace(o.VehicleModel) == "" {
		fields = append(fields, FieldModeloDoCarro)
	}
	if strings.TrimSpace(o.VehiclePlate) == "" {
		fields = append(fields, FieldPlacaDoCarro)
	}
	if !totalSet || o.Total < 0 {
		fields = append(fields, FieldValorTotal)
	}
	if !tipSet || o.TipAmount < 0 {
		fields = append(fields, FieldCaixinha)
	}
	if len(o.VehicleTypes) == 0 {
		fields = append(fields, FieldTipoDeVeiculo)
	}
	if len(o.Services) == 0 {
		fields = append(fields, FieldServicos)
	}
	if o.PaymentMethod.RequiresInvoice() && o.InvoiceAttachment == nil && !hasPendingFile {
		fields = append(fields, FieldNotaFiscal)
	}

	return fields
}
