package handlers

import (
	"net/http"

	response "lavajato/internal/adapter/http/dto/response"
	"lavajato/internal/domain/entities"
	"lavajato/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes the price suggestion table.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// SuggestPrice computes the suggested total for the given vehicle types and
// services, passed as repeatable query parameters:
//
//	GET /v1/pricing/suggestion?tipo_veiculo=Moto&servicos=Lavagem%20Geral
func (h *PricingHandler) SuggestPrice(c *gin.Context) {
	rawTypes := c.QueryArray("tipo_veiculo")
	rawServices := c.QueryArray("servicos")

	types := make([]entities.VehicleType, len(rawTypes))
	for i, v := range rawTypes {
		types[i] = entities.VehicleType(v)
	}
	services := make([]entities.ServiceName, len(rawServices))
	for i, s := range rawServices {
		services[i] = entities.ServiceName(s)
	}

	total, ok := pricing.Suggest(types, services)
	c.JSON(http.StatusOK, response.PricingSuggestionResponse{Total: total, Suggested: ok})
}
