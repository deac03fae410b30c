package handlers

import (
	"net/http"
	"strconv"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	inventory service.InventoryService
	log       *zap.Logger
}

func NewInventoryHandler(inventory service.InventoryService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, log: log}
}

func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	mv, err := h.inventory.Adjust(c.Request.Context(), service.AdjustInput{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		Kind:        models.MovementKind(req.Kind),
		Note:        req.Note,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMovementResponse(mv))
}

func (h *InventoryHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	rows, err := h.inventory.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) Stock(c *gin.Context) {
	productParam := c.Query("producto_id")
	warehouseParam := c.Query("deposito_id")

	// With both params this answers a point quantity lookup; with only a
	// warehouse (or nothing) it lists the joined ledger.
	if productParam != "" && warehouseParam != "" {
		productID, err := uuid.Parse(productParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid producto_id", nil))
			return
		}
		warehouseID, err := uuid.Parse(warehouseParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid deposito_id", nil))
			return
		}
		qty, err := h.inventory.GetQuantity(c.Request.Context(), productID, warehouseID)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, dto.QuantityResponse{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    qty,
		})
		return
	}

	var warehouseID *uuid.UUID
	if warehouseParam != "" {
		id, err := uuid.Parse(warehouseParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid deposito_id", nil))
			return
		}
		warehouseID = &id
	}

	rows, err := h.inventory.ListStock(c.Request.Context(), warehouseID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *InventoryHandler) Reconcile(c *gin.Context) {
	mismatches, err := h.inventory.VerifyLedger(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"consistent": len(mismatches) == 0,
		"mismatches": mismatches,
	})
}
