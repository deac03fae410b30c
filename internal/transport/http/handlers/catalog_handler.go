package handlers

import (
	"net/http"
	"strconv"

	"github.com/Vld439/vinovault/internal/repository"
	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, log: log}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, total, err := h.catalog.ListProducts(c.Request.Context(), repository.ProductListFilter{
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewProductResponse(&list[i]))
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Items: items, Total: total})
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.catalog.CreateProduct(c.Request.Context(), service.ProductInput{
		SKU:                req.SKU,
		Name:               req.Name,
		Description:        req.Description,
		PurchasePriceCents: req.PurchasePriceCents,
		SalePriceCents:     req.SalePriceCents,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(p))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", nil))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), id, service.ProductPatch{
		SKU:                req.SKU,
		Name:               req.Name,
		Description:        req.Description,
		PurchasePriceCents: req.PurchasePriceCents,
		SalePriceCents:     req.SalePriceCents,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(p))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", nil))
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListWarehouses(c *gin.Context) {
	list, err := h.catalog.ListWarehouses(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items := make([]dto.WarehouseResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewWarehouseResponse(&list[i]))
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateWarehouse(c *gin.Context) {
	var req dto.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	w, err := h.catalog.CreateWarehouse(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWarehouseResponse(w))
}
