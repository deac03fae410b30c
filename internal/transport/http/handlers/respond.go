package handlers

import (
	"errors"
	"net/http"

	"github.com/Vld439/vinovault/internal/service"
	"github.com/Vld439/vinovault/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors to the HTTP error envelope. Anything not in
// the taxonomy is an infrastructure error: logged, surfaced as a generic 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("authentication required"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid credentials"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("insufficient role"))
	case errors.Is(err, service.ErrStepUpRequired):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("admin credential check failed"))
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrWarehouseNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))
	case errors.Is(err, service.ErrSKUAlreadyExists),
		errors.Is(err, service.ErrWarehouseAlreadyExists),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrSaleAlreadyVoided),
		errors.Is(err, service.ErrClientHasSales),
		errors.Is(err, service.ErrProductReferenced):
		c.JSON(http.StatusConflict, dto.NewConflictError(err.Error()))
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidMovementKind),
		errors.Is(err, service.ErrInvalidCurrency),
		errors.Is(err, service.ErrEmptyItems):
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err.Error(), nil))
	case errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusUnprocessableEntity, dto.NewUnprocessableError("insufficient_stock", err.Error()))
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError())
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body: "+err.Error(), nil))
}
