package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRow is one joined ledger row for the stock listing.
type StockRow struct {
	ProductID   uuid.UUID `json:"product_id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Warehouse   string    `json:"warehouse"`
	Quantity    int64     `json:"quantity"`
}

type StockRepo interface {
	Get(ctx context.Context, productID, warehouseID uuid.UUID) (*models.Stock, error)
	// GetForUpdate reads the ledger row with a row lock so concurrent
	// writers against the same (product, warehouse) pair serialize.
	GetForUpdate(ctx context.Context, productID, warehouseID uuid.UUID) (*models.Stock, error)
	// ApplyDelta upserts quantity = quantity + delta (insert at delta when
	// no row exists). Only the movement recorder may call it.
	ApplyDelta(ctx context.Context, productID, warehouseID uuid.UUID, delta int64) error
	List(ctx context.Context, warehouseID *uuid.UUID) ([]StockRow, error)
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepo(db *gorm.DB) StockRepo { return &stockRepo{db: db} }

func (r *stockRepo) Get(ctx context.Context, productID, warehouseID uuid.UUID) (*models.Stock, error) {
	var st models.Stock
	err := r.db.WithContext(ctx).
		First(&st, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &st, err
}

func (r *stockRepo) GetForUpdate(ctx context.Context, productID, warehouseID uuid.UUID) (*models.Stock, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its single-writer model already serializes.
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var st models.Stock
	err := q.First(&st, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &st, err
}

func (r *stockRepo) ApplyDelta(ctx context.Context, productID, warehouseID uuid.UUID, delta int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "warehouse_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("stocks.quantity + ?", delta),
			"updated_at": now,
		}),
	}).Create(&models.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    delta,
		UpdatedAt:   now,
	}).Error
}

func (r *stockRepo) List(ctx context.Context, warehouseID *uuid.UUID) ([]StockRow, error) {
	q := r.db.WithContext(ctx).
		Table("stocks").
		Select(`stocks.product_id, products.sku, products.name AS product_name,
stocks.warehouse_id, warehouses.name AS warehouse, stocks.quantity`).
		Joins("JOIN products ON products.id = stocks.product_id").
		Joins("JOIN warehouses ON warehouses.id = stocks.warehouse_id").
		Order("products.name ASC")
	if warehouseID != nil {
		q = q.Where("stocks.warehouse_id = ?", *warehouseID)
	}
	var rows []StockRow
	err := q.Scan(&rows).Error
	return rows, err
}
