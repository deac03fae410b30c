package service

import (
	"context"
	"time"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"

	"github.com/google/uuid"
)

type inventoryService struct {
	repo          *repository.Repository
	allowNegative bool
	now           func() time.Time
}

func NewInventoryService(repo *repository.Repository, allowNegative bool) InventoryService {
	return &inventoryService{
		repo:          repo,
		allowNegative: allowNegative,
		now:           time.Now,
	}
}

// recordMovement is the single mutation path of the ledger: it appends the
// audit row and applies the delta to the stocks table inside the caller's
// transaction. It performs no sign validation; callers pre-check availability.
func recordMovement(ctx context.Context, tx *repository.Repository, m *models.StockMovement) error {
	if err := tx.Movements.Append(ctx, m); err != nil {
		return err
	}
	return tx.Stocks.ApplyDelta(ctx, m.ProductID, m.WarehouseID, m.Delta)
}

func (s *inventoryService) Adjust(ctx context.Context, in AdjustInput) (*models.StockMovement, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if !models.ManualKind(in.Kind) {
		return nil, ErrInvalidMovementKind
	}

	// manual-in/manual-out take an absolute quantity; adjustment takes a
	// signed delta entered by the operator.
	var delta int64
	switch in.Kind {
	case models.MovementManualIn:
		if in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		delta = in.Quantity
	case models.MovementManualOut:
		if in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		delta = -in.Quantity
	case models.MovementAdjustment:
		if in.Quantity == 0 {
			return nil, ErrInvalidQuantity
		}
		delta = in.Quantity
	}

	p, err := s.repo.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	w, err := s.repo.Warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWarehouseNotFound
	}

	mv := &models.StockMovement{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Delta:       delta,
		Kind:        in.Kind,
		UserID:      uid,
		Note:        in.Note,
		CreatedAt:   s.now(),
	}

	err = s.repo.WithTx(func(tx *repository.Repository) error {
		if delta < 0 && !s.allowNegative {
			st, err := tx.Stocks.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
			if err != nil {
				return err
			}
			var current int64
			if st != nil {
				current = st.Quantity
			}
			if current+delta < 0 {
				return ErrInsufficientStock
			}
		}
		return recordMovement(ctx, tx, mv)
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func (s *inventoryService) GetQuantity(ctx context.Context, productID, warehouseID uuid.UUID) (int64, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return 0, err
	}
	st, err := s.repo.Stocks.Get(ctx, productID, warehouseID)
	if err != nil {
		return 0, err
	}
	if st == nil {
		return 0, nil
	}
	return st.Quantity, nil
}

func (s *inventoryService) ListStock(ctx context.Context, warehouseID *uuid.UUID) ([]repository.StockRow, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	return s.repo.Stocks.List(ctx, warehouseID)
}

func (s *inventoryService) History(ctx context.Context, limit int) ([]repository.MovementHistoryRow, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	return s.repo.Movements.History(ctx, limit)
}

func (s *inventoryService) VerifyLedger(ctx context.Context) ([]LedgerMismatch, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	sums, err := s.repo.Movements.SumByPair(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Stocks.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	type pair struct{ p, w uuid.UUID }
	recomputed := make(map[pair]int64, len(sums))
	for _, s := range sums {
		recomputed[pair{s.ProductID, s.WarehouseID}] = s.Total
	}

	mismatches := []LedgerMismatch{}
	seen := make(map[pair]bool, len(rows))
	for _, row := range rows {
		k := pair{row.ProductID, row.WarehouseID}
		seen[k] = true
		if row.Quantity != recomputed[k] {
			mismatches = append(mismatches, LedgerMismatch{
				ProductID:   row.ProductID,
				WarehouseID: row.WarehouseID,
				Ledger:      row.Quantity,
				Recomputed:  recomputed[k],
			})
		}
	}
	// movement sums with no ledger row at all
	for k, total := range recomputed {
		if !seen[k] && total != 0 {
			mismatches = append(mismatches, LedgerMismatch{
				ProductID:   k.p,
				WarehouseID: k.w,
				Ledger:      0,
				Recomputed:  total,
			})
		}
	}
	return mismatches, nil
}
