package handlers

import (
	"net/http"
	"strconv"

	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SaleHandler struct {
	sales service.SaleService
	log   *zap.Logger
}

func NewSaleHandler(sales service.SaleService, log *zap.Logger) *SaleHandler {
	return &SaleHandler{sales: sales, log: log}
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]service.SaleLineInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.SaleLineInput{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		})
	}

	sale, err := h.sales.Create(c.Request.Context(), service.CreateSaleInput{
		ClientID:      req.ClientID,
		WarehouseID:   req.WarehouseID,
		Currency:      req.Currency,
		Items:         items,
		SubtotalCents: req.SubtotalCents,
		TaxCents:      req.TaxCents,
		TotalCents:    req.TotalCents,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSaleResponse(sale))
}

func (h *SaleHandler) Void(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid sale id", nil))
		return
	}

	var req dto.VoidSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sale, err := h.sales.Void(c.Request.Context(), service.VoidSaleInput{
		SaleID:        id,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSaleResponse(sale))
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid sale id", nil))
		return
	}

	sale, err := h.sales.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSaleResponse(sale))
}

func (h *SaleHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	sales, err := h.sales.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, dto.NewSaleResponse(&sales[i]))
	}
	c.JSON(http.StatusOK, out)
}
