package service

import (
	"context"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"

	"github.com/google/uuid"
)

// AdjustInput is one manual stock movement. Quantity is the absolute amount;
// the sign of the applied delta follows the kind.
type AdjustInput struct {
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	Quantity    int64
	Kind        models.MovementKind
	Note        string
}

// LedgerMismatch is one (product, warehouse) pair whose denormalized quantity
// disagrees with the signed sum of its movement log.
type LedgerMismatch struct {
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Ledger      int64     `json:"ledger"`
	Recomputed  int64     `json:"recomputed"`
}

type InventoryService interface {
	// Adjust records one manual movement in its own transaction.
	Adjust(ctx context.Context, in AdjustInput) (*models.StockMovement, error)
	GetQuantity(ctx context.Context, productID, warehouseID uuid.UUID) (int64, error)
	ListStock(ctx context.Context, warehouseID *uuid.UUID) ([]repository.StockRow, error)
	History(ctx context.Context, limit int) ([]repository.MovementHistoryRow, error)
	// VerifyLedger recomputes every pair from the movement log and reports
	// mismatches. Read-only maintenance check; it never repairs.
	VerifyLedger(ctx context.Context) ([]LedgerMismatch, error)
}
