package service

import (
	"context"
	"strings"
	"time"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"

	"github.com/google/uuid"
)

type ProductInput struct {
	SKU                string
	Name               string
	Description        string
	PurchasePriceCents int64
	SalePriceCents     int64
	ImageURL           *string
}

type ProductPatch struct {
	SKU                *string
	Name               *string
	Description        *string
	PurchasePriceCents *int64
	SalePriceCents     *int64
	ImageURL           *string
}

type CatalogService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch ProductPatch) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateWarehouse(ctx context.Context, name string) (*models.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]models.Warehouse, error)
}

type catalogService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{repo: repo, now: time.Now}
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Product{
		SKU:                strings.TrimSpace(in.SKU),
		Name:               strings.TrimSpace(in.Name),
		Description:        strings.TrimSpace(in.Description),
		PurchasePriceCents: in.PurchasePriceCents,
		SalePriceCents:     in.SalePriceCents,
		ImageURL:           in.ImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.repo.WithTx(func(tx *repository.Repository) error {
		if existing, err := tx.Products.GetBySKU(ctx, p.SKU); err != nil {
			return err
		} else if existing != nil {
			return ErrSKUAlreadyExists
		}
		return tx.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch ProductPatch) (*models.Product, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]any{}
	if patch.SKU != nil {
		fields["sku"] = strings.TrimSpace(*patch.SKU)
	}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		fields["description"] = strings.TrimSpace(*patch.Description)
	}
	if patch.PurchasePriceCents != nil {
		fields["purchase_price_cents"] = *patch.PurchasePriceCents
	}
	if patch.SalePriceCents != nil {
		fields["sale_price_cents"] = *patch.SalePriceCents
	}
	if patch.ImageURL != nil {
		fields["image_url"] = *patch.ImageURL
	}

	if len(fields) == 0 {
		return p, nil
	}
	fields["updated_at"] = s.now()

	if v, ok := fields["sku"]; ok {
		if existing, err := s.repo.Products.GetBySKU(ctx, v.(string)); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != p.ID {
			return nil, ErrSKUAlreadyExists
		}
	}

	if err := s.repo.Products.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Products.GetByID(ctx, id)
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context, f repository.ProductListFilter) ([]models.Product, int64, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.Products.List(ctx, f)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	// FK RESTRICT on movements/sale items surfaces as a constraint
	// violation; translated to a conflict so the client gets a usable
	// message. Anything else is a real failure and passes through.
	ok, err := s.repo.Products.Delete(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrProductReferenced
		}
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

func (s *catalogService) CreateWarehouse(ctx context.Context, name string) (*models.Warehouse, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	w := &models.Warehouse{Name: name, CreatedAt: s.now()}

	err := s.repo.WithTx(func(tx *repository.Repository) error {
		if existing, err := tx.Warehouses.GetByName(ctx, name); err != nil {
			return err
		} else if existing != nil {
			return ErrWarehouseAlreadyExists
		}
		return tx.Warehouses.Create(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *catalogService) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	return s.repo.Warehouses.List(ctx)
}
