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

type ClientHandler struct {
	clients service.ClientService
	log     *zap.Logger
}

func NewClientHandler(clients service.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{clients: clients, log: log}
}

func (h *ClientHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, total, err := h.clients.List(c.Request.Context(), repository.ClientListFilter{
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	items := make([]dto.ClientResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewClientResponse(&list[i]))
	}
	c.JSON(http.StatusOK, dto.ClientListResponse{Items: items, Total: total})
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cl, err := h.clients.Create(c.Request.Context(), service.ClientInput{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Foreign: req.Foreign,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewClientResponse(cl))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid client id", nil))
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cl, err := h.clients.Update(c.Request.Context(), id, service.ClientPatch{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Foreign: req.Foreign,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClientResponse(cl))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid client id", nil))
		return
	}

	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
