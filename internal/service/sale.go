package service

import (
	"context"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
)

var saleCurrencies = map[string]bool{"USD": true, "PYG": true, "BRL": true}

type SaleLineInput struct {
	ProductID      uuid.UUID
	Quantity       int64
	UnitPriceCents int64
}

// CreateSaleInput carries the checkout payload. Prices and totals are the
// SPA's computation and are copied as-is, not re-derived from the catalog.
type CreateSaleInput struct {
	ClientID      uuid.UUID
	WarehouseID   uuid.UUID
	Currency      string
	Items         []SaleLineInput
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// VoidSaleInput includes the step-up credential: an admin's email and
// password re-verified at void time, independent of the caller's session.
type VoidSaleInput struct {
	SaleID        uuid.UUID
	AdminEmail    string
	AdminPassword string
}

type SaleService interface {
	Create(ctx context.Context, in CreateSaleInput) (*models.Sale, error)
	Void(ctx context.Context, in VoidSaleInput) (*models.Sale, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	History(ctx context.Context, limit int) ([]models.Sale, error)
}
