package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"

	"github.com/google/uuid"
)

type saleService struct {
	repo   *repository.Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewSaleService(repo *repository.Repository, hasher PasswordHasher) SaleService {
	return &saleService{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

func (s *saleService) Create(ctx context.Context, in CreateSaleInput) (*models.Sale, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if !saleCurrencies[in.Currency] {
		return nil, ErrInvalidCurrency
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	client, err := s.repo.Clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	wh, err := s.repo.Warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, ErrWarehouseNotFound
	}

	now := s.now()
	sale := &models.Sale{
		ClientID:      in.ClientID,
		UserID:        uid,
		WarehouseID:   in.WarehouseID,
		Currency:      in.Currency,
		SubtotalCents: in.SubtotalCents,
		TaxCents:      in.TaxCents,
		TotalCents:    in.TotalCents,
		Status:        models.SaleStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, it := range in.Items {
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.Quantity * it.UnitPriceCents,
			CreatedAt:      now,
		})
	}

	// Duplicate lines for the same product are summed so the availability
	// check compares the full requested quantity against the locked row.
	// Locks are taken in a canonical order (sorted by product id) so two
	// concurrent sales over the same products cannot deadlock each other.
	need := make(map[uuid.UUID]int64, len(in.Items))
	order := make([]uuid.UUID, 0, len(in.Items))
	for _, it := range in.Items {
		if _, ok := need[it.ProductID]; !ok {
			order = append(order, it.ProductID)
		}
		need[it.ProductID] += it.Quantity
	}
	sort.Slice(order, func(i, j int) bool {
		return strings.Compare(order[i].String(), order[j].String()) < 0
	})

	err = s.repo.WithTx(func(tx *repository.Repository) error {
		for _, pid := range order {
			st, err := tx.Stocks.GetForUpdate(ctx, pid, in.WarehouseID)
			if err != nil {
				return err
			}
			if st == nil || st.Quantity < need[pid] {
				return fmt.Errorf("%w: product %s", ErrInsufficientStock, pid)
			}
		}

		if err := tx.Sales.Create(ctx, sale); err != nil {
			return err
		}

		for _, it := range in.Items {
			mv := &models.StockMovement{
				ProductID:   it.ProductID,
				WarehouseID: in.WarehouseID,
				Delta:       -it.Quantity,
				Kind:        models.MovementSaleOut,
				UserID:      uid,
				SaleID:      &sale.ID,
				CreatedAt:   now,
			}
			if err := recordMovement(ctx, tx, mv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) Void(ctx context.Context, in VoidSaleInput) (*models.Sale, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	// Step-up authorization: the supplied credential must belong to an admin
	// and verify against its stored hash. The caller's session role alone is
	// not sufficient to reverse a sale.
	admin, err := s.repo.Users.GetByEmail(ctx, in.AdminEmail)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.Role != models.RoleAdmin || !s.hasher.Compare(admin.PasswordHash, in.AdminPassword) {
		return nil, ErrStepUpRequired
	}

	now := s.now()
	var voided *models.Sale

	err = s.repo.WithTx(func(tx *repository.Repository) error {
		sale, err := tx.Sales.GetByID(ctx, in.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return ErrSaleNotFound
		}
		if sale.Status == models.SaleStatusVoided {
			return ErrSaleAlreadyVoided
		}

		for _, it := range sale.Items {
			mv := &models.StockMovement{
				ProductID:   it.ProductID,
				WarehouseID: sale.WarehouseID,
				Delta:       it.Quantity,
				Kind:        models.MovementSaleReversalIn,
				UserID:      uid,
				SaleID:      &sale.ID,
				CreatedAt:   now,
			}
			if err := recordMovement(ctx, tx, mv); err != nil {
				return err
			}
		}

		ok, err := tx.Sales.MarkVoided(ctx, sale.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSaleAlreadyVoided
		}

		sale.Status = models.SaleStatusVoided
		voided = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return voided, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	sale, err := s.repo.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

func (s *saleService) History(ctx context.Context, limit int) ([]models.Sale, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	return s.repo.Sales.ListRecent(ctx, limit)
}
