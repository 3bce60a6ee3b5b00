package pricing

import (
	"testing"

	"lavajato/internal/domain/entities"
)

func TestSuggest(t *testing.T) {
	t.Run("empty inputs give no suggestion", func(t *testing.T) {
		if _, ok := Suggest(nil, []entities.ServiceName{entities.ServiceLavagemGeral}); ok {
			t.Fatalf("expected no suggestion without vehicle types")
		}
		if _, ok := Suggest([]entities.VehicleType{entities.VehicleMoto}, nil); ok {
			t.Fatalf("expected no suggestion without services")
		}
	})

	t.Run("single type single service", func(t *testing.T) {
		total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleMoto},
			[]entities.ServiceName{entities.ServiceLavagemGeral},
		)
		if !ok || total != 30 {
			t.Fatalf("expected 30, got %v ok=%v", total, ok)
		}
	})

	t.Run("cheapest vehicle class wins", func(t *testing.T) {
		total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleCarroPequeno, entities.VehicleUberTaxi},
			[]entities.ServiceName{entities.ServiceLavagemGeral},
		)
		if !ok || total != 30 {
			t.Fatalf("expected Uber/Táxi rate 30, got %v ok=%v", total, ok)
		}
	})

	t.Run("base services accumulate per type before the minimum", func(t *testing.T) {
		total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleCarroGrande},
			[]entities.ServiceName{entities.ServiceLavagemGeral, entities.ServiceDuchaComSecagem},
		)
		if !ok || total != 75 {
			t.Fatalf("expected 50+25=75, got %v ok=%v", total, ok)
		}
	})

	t.Run("extras are flat and independent of vehicle type", func(t *testing.T) {
		total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleCarroPequeno},
			[]entities.ServiceName{entities.ServiceLavagemGeral, entities.ServicePolimento},
		)
		if !ok || total != 340 {
			t.Fatalf("expected 40+300=340, got %v ok=%v", total, ok)
		}
	})

	t.Run("extras only, no base match", func(t *testing.T) {
		total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleVan},
			[]entities.ServiceName{entities.ServiceAplicacaoDeCera},
		)
		if !ok || total != 50 {
			t.Fatalf("expected extras-only 50, got %v ok=%v", total, ok)
		}
	})

	t.Run("unpriced combination gives no suggestion", func(t *testing.T) {
		if total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleVan},
			[]entities.ServiceName{entities.ServiceEstacionamento},
		); ok {
			t.Fatalf("expected no suggestion, got %v", total)
		}
	})

	t.Run("type without base price does not zero the minimum", func(t *testing.T) {
		// Van has no base table; Moto does. The Moto rate must win, not 0.
		total, ok := Suggest(
			[]entities.VehicleType{entities.VehicleVan, entities.VehicleMoto},
			[]entities.ServiceName{entities.ServiceDuchaComSecagem},
		)
		if !ok || total != 15 {
			t.Fatalf("expected 15, got %v ok=%v", total, ok)
		}
	})
}

func TestLookups(t *testing.T) {
	if p, ok := BasePrice(entities.VehicleCarroPequeno, entities.ServiceLavagemGeral); !ok || p != 40 {
		t.Fatalf("expected 40, got %v ok=%v", p, ok)
	}
	if _, ok := BasePrice(entities.VehicleHunter, entities.ServiceLavagemGeral); ok {
		t.Fatalf("Hunter has no base table")
	}
	if p, ok := ExtraPrice(entities.ServiceHigienizacao); !ok || p != 200 {
		t.Fatalf("expected 200, got %v ok=%v", p, ok)
	}
	if _, ok := ExtraPrice(entities.ServiceLavagemGeral); ok {
		t.Fatalf("Lavagem Geral is not an extra")
	}
}
