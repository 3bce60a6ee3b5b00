package handlers

import (
	"net/http"

	"lavajato/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// DailyReport returns today's aggregated figures.
func (h *ReportHandler) DailyReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Daily())
}

// WhatsAppReport returns the daily report rendered as a WhatsApp-ready text
// message.
func (h *ReportHandler) WhatsAppReport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.usecase.WhatsAppMessage()})
}
