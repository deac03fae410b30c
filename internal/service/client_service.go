package service

import (
	"context"
	"strings"
	"time"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"

	"github.com/google/uuid"
)

type ClientInput struct {
	Name    string
	TaxID   string
	Email   string
	Phone   string
	Address string
	Foreign bool
}

type ClientPatch struct {
	Name    *string
	TaxID   *string
	Email   *string
	Phone   *string
	Address *string
	Foreign *bool
}

type ClientService interface {
	Create(ctx context.Context, in ClientInput) (*models.Client, error)
	Update(ctx context.Context, id uuid.UUID, patch ClientPatch) (*models.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Client, error)
	List(ctx context.Context, f repository.ClientListFilter) ([]models.Client, int64, error)
	// Delete refuses clients with any sale history.
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewClientService(repo *repository.Repository) ClientService {
	return &clientService{repo: repo, now: time.Now}
}

func (s *clientService) Create(ctx context.Context, in ClientInput) (*models.Client, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	c := &models.Client{
		Name:      strings.TrimSpace(in.Name),
		TaxID:     strings.TrimSpace(in.TaxID),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Foreign:   in.Foreign,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, patch ClientPatch) (*models.Client, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	c, err := s.repo.Clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrClientNotFound
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.TaxID != nil {
		fields["tax_id"] = strings.TrimSpace(*patch.TaxID)
	}
	if patch.Email != nil {
		fields["email"] = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		fields["phone"] = strings.TrimSpace(*patch.Phone)
	}
	if patch.Address != nil {
		fields["address"] = strings.TrimSpace(*patch.Address)
	}
	if patch.Foreign != nil {
		fields["foreign"] = *patch.Foreign
	}

	if len(fields) == 0 {
		return c, nil
	}
	fields["updated_at"] = s.now()

	if err := s.repo.Clients.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.Clients.GetByID(ctx, id)
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	c, err := s.repo.Clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrClientNotFound
	}
	return c, nil
}

func (s *clientService) List(ctx context.Context, f repository.ClientListFilter) ([]models.Client, int64, error) {
	if _, _, err := requireAuth(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.Clients.List(ctx, f)
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	c, err := s.repo.Clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrClientNotFound
	}

	has, err := s.repo.Sales.ExistsForClient(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return ErrClientHasSales
	}

	ok, err := s.repo.Clients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientNotFound
	}
	return nil
}
