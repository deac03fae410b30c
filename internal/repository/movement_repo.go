package repository

import (
	"context"
	"time"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementHistoryRow is one joined audit entry for the history endpoint.
type MovementHistoryRow struct {
	ID          uuid.UUID           `json:"id"`
	ProductID   uuid.UUID           `json:"product_id"`
	SKU         string              `json:"sku"`
	ProductName string              `json:"product_name"`
	WarehouseID uuid.UUID           `json:"warehouse_id"`
	Warehouse   string              `json:"warehouse"`
	Delta       int64               `json:"delta"`
	Kind        models.MovementKind `json:"kind"`
	UserEmail   string              `json:"user_email"`
	UserName    string              `json:"user_name"`
	SaleID      *uuid.UUID          `json:"sale_id,omitempty"`
	Note        string              `json:"note,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// PairSum is the recomputed signed movement total for one ledger pair.
type PairSum struct {
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	Total       int64
}

type MovementRepo interface {
	// Append inserts one immutable audit row. There is deliberately no
	// update or delete on this repo.
	Append(ctx context.Context, m *models.StockMovement) error
	History(ctx context.Context, limit int) ([]MovementHistoryRow, error)
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]models.StockMovement, error)
	// SumByPair recomputes the ledger from the movement log, for
	// reconciliation against the stocks table.
	SumByPair(ctx context.Context) ([]PairSum, error)
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepo(db *gorm.DB) MovementRepo { return &movementRepo{db: db} }

func (r *movementRepo) Append(ctx context.Context, m *models.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movementRepo) History(ctx context.Context, limit int) ([]MovementHistoryRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []MovementHistoryRow
	err := r.db.WithContext(ctx).
		Table("stock_movements").
		Select(`stock_movements.id, stock_movements.product_id, products.sku,
products.name AS product_name, stock_movements.warehouse_id,
warehouses.name AS warehouse, stock_movements.delta, stock_movements.kind,
users.email AS user_email, users.display_name AS user_name,
stock_movements.sale_id, stock_movements.note, stock_movements.created_at`).
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Joins("JOIN warehouses ON warehouses.id = stock_movements.warehouse_id").
		Joins("JOIN users ON users.id = stock_movements.user_id").
		Order("stock_movements.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *movementRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]models.StockMovement, error) {
	var list []models.StockMovement
	err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *movementRepo) SumByPair(ctx context.Context) ([]PairSum, error) {
	var sums []PairSum
	err := r.db.WithContext(ctx).
		Table("stock_movements").
		Select("product_id, warehouse_id, SUM(delta) AS total").
		Group("product_id").
		Group("warehouse_id").
		Scan(&sums).Error
	return sums, err
}
