package repository

import (
	"context"
	"errors"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientListFilter struct {
	Query  string
	Limit  int
	Offset int
}

type ClientRepo interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	List(ctx context.Context, f ClientListFilter) ([]models.Client, int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) ClientRepo { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *clientRepo) List(ctx context.Context, f ClientListFilter) ([]models.Client, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Client{})

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("name LIKE ? OR tax_id LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Client
	err := q.Order("name ASC").Limit(f.Limit).Offset(f.Offset).Find(&list).Error
	return list, total, err
}

func (r *clientRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(fields).Error
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
