package handlers

import (
	"net/http"
	"time"

	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reports service.ReportService
	rates   service.RatesPort
	log     *zap.Logger
}

func NewReportHandler(reports service.ReportService, rates service.RatesPort, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, rates: rates, log: log}
}

// Rates serves the cached USD conversion factors for checkout display.
func (h *ReportHandler) Rates(c *gin.Context) {
	factors, stale, err := h.rates.Get(c.Request.Context())
	if err != nil {
		h.log.Error("rates unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableError("rates_unavailable", "exchange rates unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.RatesResponse{Base: "USD", Rates: factors, Stale: stale})
}

func (h *ReportHandler) Sales(c *gin.Context) {
	from, err := parseDateQuery(c, "desde", time.Now().AddDate(0, 0, -30))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid desde date, want YYYY-MM-DD", nil))
		return
	}
	to, err := parseDateQuery(c, "hasta", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid hasta date, want YYYY-MM-DD", nil))
		return
	}
	// "hasta" is inclusive at the day level.
	to = to.AddDate(0, 0, 1)

	report, err := h.reports.Sales(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseDateQuery(c *gin.Context, name string, def time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return def.Truncate(24 * time.Hour), nil
	}
	return time.Parse("2006-01-02", raw)
}
