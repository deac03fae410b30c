package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepo interface {
	// Create inserts the sale header together with its items.
	Create(ctx context.Context, s *models.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]models.Sale, error)
	// MarkVoided flips status active -> voided. Returns false when the sale
	// was not active (already voided or missing), leaving it untouched.
	MarkVoided(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsForClient(ctx context.Context, clientID uuid.UUID) (bool, error)
	TotalsInRange(ctx context.Context, from, to time.Time) (SaleTotals, error)
}

// SaleTotals aggregates active sales for reporting, amounts in USD cents.
type SaleTotals struct {
	Count         int64
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepo(db *gorm.DB) SaleRepo { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *models.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	var s models.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *saleRepo) ListRecent(ctx context.Context, limit int) ([]models.Sale, error) {
	if limit <= 0 {
		limit = 100
	}
	var list []models.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *saleRepo) MarkVoided(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("id = ? AND status = ?", id, models.SaleStatusActive).
		Update("status", models.SaleStatusVoided)
	return tx.RowsAffected > 0, tx.Error
}

func (r *saleRepo) ExistsForClient(ctx context.Context, clientID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("client_id = ?", clientID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *saleRepo) TotalsInRange(ctx context.Context, from, to time.Time) (SaleTotals, error) {
	var t SaleTotals
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select(`COUNT(*) AS count,
COALESCE(SUM(subtotal_cents), 0) AS subtotal_cents,
COALESCE(SUM(tax_cents), 0) AS tax_cents,
COALESCE(SUM(total_cents), 0) AS total_cents`).
		Where("status = ?", models.SaleStatusActive).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&t).Error
	return t, err
}
