package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPricingHandler_SuggestPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/v1/pricing/suggestion", NewPricingHandler().SuggestPrice)

	t.Run("moto with lavagem geral", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/suggestion?tipo_veiculo=Moto&servicos=Lavagem%20Geral", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Total     float64 `json:"total"`
			Suggested bool    `json:"suggested"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if !body.Suggested || body.Total != 30 {
			t.Fatalf("expected suggested total 30, got %+v", body)
		}
	})

	t.Run("no matching service yields no suggestion", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/suggestion?tipo_veiculo=Van&servicos=Lavagem%20Geral", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body struct {
			Suggested bool `json:"suggested"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Suggested {
			t.Fatalf("expected no suggestion, got %s", w.Body.String())
		}
	})
}
