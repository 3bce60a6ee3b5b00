package usecase

import (
	"reflect"
	"testing"
	"time"

	"lavajato/internal/domain/entities"
)

func validOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		SequenceNumber:    1,
		Timestamp:         time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC),
		ResponsiblePerson: "Maria",
		VehicleModel:      "Biz",
		VehiclePlate:      "XYZ9A87",
		VehicleTypes:      []entities.VehicleType{entities.VehicleMoto},
		Services:          []entities.ServiceName{entities.ServiceLavagemGeral},
		Total:             30,
		PaymentMethod:     entities.PaymentDinheiro,
	}
}

func TestValidateOrder(t *testing.T) {
	t.Run("empty order reports every field in declared order", func(t *testing.T) {
		got := validateOrder(entities.ServiceOrder{}, false, false, false)
		want := []string{
			"Data/Hora",
			"Responsável",
			"Numeração do carro",
			"Modelo do carro",
			"Placa do carro",
			"Valor total",
			"Caixinha",
			"Tipo de Veículo",
			"Serviços Prestados",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v\nwant %v", got, want)
		}
	})

	t.Run("valid cash order has no violations", func(t *testing.T) {
		if got := validateOrder(validOrder(), true, true, false); len(got) != 0 {
			t.Fatalf("expected no violations, got %v", got)
		}
	})

	t.Run("zero total and tip are legal when explicitly set", func(t *testing.T) {
		o := validOrder()
		o.Total = 0
		o.TipAmount = 0
		if got := validateOrder(o, true, true, false); len(got) != 0 {
			t.Fatalf("expected no violations, got %v", got)
		}
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		o := validOrder()
		o.Total = -1
		o.TipAmount = -0.5
		got := validateOrder(o, true, true, false)
		want := []string{"Valor total", "Caixinha"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("electronic payment requires the invoice", func(t *testing.T) {
		for _, pm := range []entities.PaymentMethod{entities.PaymentCredito, entities.PaymentDebito, entities.PaymentPix} {
			o := validOrder()
			o.PaymentMethod = pm
			got := validateOrder(o, true, true, false)
			if !reflect.DeepEqual(got, []string{"Nota Fiscal do Pagamento"}) {
				t.Fatalf("%s: got %v", pm, got)
			}
		}
	})

	t.Run("a staged file satisfies the invoice rule", func(t *testing.T) {
		o := validOrder()
		o.PaymentMethod = entities.PaymentCredito
		if got := validateOrder(o, true, true, true); len(got) != 0 {
			t.Fatalf("expected no violations, got %v", got)
		}
	})

	t.Run("a stored attachment satisfies the invoice rule", func(t *testing.T) {
		o := validOrder()
		o.PaymentMethod = entities.PaymentPix
		o.InvoiceAttachment = &entities.InvoiceAttachment{URL: "https://example.com/nota.pdf"}
		if got := validateOrder(o, true, true, false); len(got) != 0 {
			t.Fatalf("expected no violations, got %v", got)
		}
	})

	t.Run("cash and other payments need no invoice", func(t *testing.T) {
		for _, pm := range []entities.PaymentMethod{entities.PaymentDinheiro, entities.PaymentOutros} {
			o := validOrder()
			o.PaymentMethod = pm
			if got := validateOrder(o, true, true, false); len(got) != 0 {
				t.Fatalf("%s: got %v", pm, got)
			}
		}
	})
}
