package pricing

import "lavajato/internal/domain/entities"

// Base services are priced per vehicle type; extra services carry a flat price
// regardless of vehicle. Types or services absent from the tables simply don't
// contribute to the suggestion.

var baseTable = map[entities.VehicleType]map[entities.ServiceName]float64{
	entities.VehicleCarroPequeno: {
		entities.ServiceLavagemGeral:    40,
		entities.ServiceDuchaComSecagem: 20,
	},
	entities.VehicleCarroGrande: {
		entities.ServiceLavagemGeral:    50,
		entities.ServiceDuchaComSecagem: 25,
	},
	entities.VehicleMoto: {
		entities.ServiceLavagemGeral:    30,
		entities.ServiceDuchaComSecagem: 15,
	},
	entities.VehicleUberTaxi: {
		entities.ServiceLavagemGeral:    30,
		entities.ServiceDuchaComSecagem: 15,
	},
}

var extraTable = map[entities.ServiceName]float64{
	entities.ServiceAplicacaoDeCera: 50,
	entities.ServicePolimento:       300,
	entities.ServiceHigienizacao:    200,
}

// Suggest computes the suggested total for the selected vehicle types and
// services. The second return value is false when there is not enough pricing
// information, in which case the caller must keep any user-entered total.
//
// When more than one vehicle type matches, the cheapest applicable class wins:
// an Uber/Táxi that is also a small car is charged the Uber/Táxi rate, not the
// small-car rate.
func Suggest(vehicleTypes []entities.VehicleType, services []entities.ServiceName) (float64, bool) {
	if len(vehicleTypes) == 0 || len(services) == 0 {
		return 0, false
	}

	base := 0.0
	matched := false
	for _, vt := range vehicleTypes {
		prices, ok := baseTable[vt]
		if !ok {
			continue
		}
		sum := 0.0
		for _, svc := range services {
			sum += prices[svc]
		}
		// A type with no priced base service doesn't compete for the minimum.
		if sum <= 0 {
			continue
		}
		if !matched || sum < base {
			base = sum
			matched = true
		}
	}

	extras := 0.0
	for _, svc := range services {
		extras += extraTable[svc]
	}

	total := base + extras
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// BasePrice returns the tabled price of a single base service for one vehicle
// type, or false when the combination is not priced.
func BasePrice(vt entities.VehicleType, svc entities.ServiceName) (float64, bool) {
	prices, ok := baseTable[vt]
	if !ok {
		return 0, false
	}
	p, ok := prices[svc]
	return p, ok
}

// ExtraPrice returns the flat price of an extra service, or false when the
// service is not an extra.
func ExtraPrice(svc entities.ServiceName) (float64, bool) {
	p, ok := extraTable[svc]
	return p, ok
}
