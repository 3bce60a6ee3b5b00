package request

import (
	"encoding/json"
	"testing"

	"lavajato/internal/domain/entities"
)

func TestServiceOrderRequest_ToInput(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		var payload ServiceOrderRequest
		if err := json.Unmarshal([]byte(`{"responsavel":"Maria"}`), &payload); err != nil {
			t.Fatal(err)
		}

		in := payload.ToInput()
		if in.ResponsiblePerson == nil || *in.ResponsiblePerson != "Maria" {
			t.Fatalf("expected responsible person, got %+v", in.ResponsiblePerson)
		}
		if in.Total != nil || in.TipAmount != nil || in.PaymentMethod != nil {
			t.Fatalf("absent fields should be nil: %+v", in)
		}
		if in.VehicleTypes != nil || in.Services != nil {
			t.Fatalf("absent slices should be nil: %+v", in)
		}
	})

	t.Run("explicit zero is preserved", func(t *testing.T) {
		var payload ServiceOrderRequest
		if err := json.Unmarshal([]byte(`{"total":0,"caixinha":0}`), &payload); err != nil {
			t.Fatal(err)
		}

		in := payload.ToInput()
		if in.Total == nil || *in.Total != 0 {
			t.Fatalf("explicit zero total lost: %+v", in.Total)
		}
		if in.TipAmount == nil || *in.TipAmount != 0 {
			t.Fatalf("explicit zero tip lost: %+v", in.TipAmount)
		}
	})

	t.Run("typed slices and payment method", func(t *testing.T) {
		var payload ServiceOrderRequest
		raw := `{"tipo_veiculo":["Moto"],"servicos":["Lavagem Geral","Aplicação de cera"],"forma_pagamento":"Código QR Pix"}`
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			t.Fatal(err)
		}

		in := payload.ToInput()
		if len(in.VehicleTypes) != 1 || in.VehicleTypes[0] != entities.VehicleMoto {
			t.Fatalf("vehicle types: %+v", in.VehicleTypes)
		}
		if len(in.Services) != 2 || in.Services[1] != entities.ServiceAplicacaoDeCera {
			t.Fatalf("services: %+v", in.Services)
		}
		if in.PaymentMethod == nil || *in.PaymentMethod != entities.PaymentPix {
			t.Fatalf("payment method: %+v", in.PaymentMethod)
		}
	})
}

func TestExpenseRequestResolvers(t *testing.T) {
	t.Run("trims the description", func(t *testing.T) {
		r := ExpenseRequest{Description: "  Sabão  "}
		got, err := r.ResolveDescription()
		if err != nil || got != "Sabão" {
			t.Fatalf("got %q, %v", got, err)
		}
	})

	t.Run("blank description is rejected", func(t *testing.T) {
		r := ExpenseRequest{Description: "   "}
		if _, err := r.ResolveDescription(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("amount must be positive", func(t *testing.T) {
		zero := 0.0
		r := ExpenseRequest{Amount: &zero}
		if _, err := r.ResolveAmount(); err == nil {
			t.Fatal("expected error")
		}
	})
}
