package service

import (
	"context"
	"strings"
	"time"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        models.Role
}

type LoginResult struct {
	User        *models.User
	AccessToken string
	ExpiresAt   time.Time
}

type AuthService struct {
	users     UserRepoPort
	hasher    PasswordHasher
	tokens    TokenProvider
	accessTTL time.Duration
	now       func() time.Time
	log       *zap.Logger
}

// UserRepoPort is the slice of the user repository the auth service needs.
type UserRepoPort interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

func NewAuthService(users UserRepoPort, hasher PasswordHasher, tokens TokenProvider, accessTTL time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		accessTTL: accessTTL,
		now:       time.Now,
		log:       log,
	}
}

// Register creates a user account. Accounts are provisioned by admins; there
// is no self-service signup.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if in.Role != models.RoleAdmin && in.Role != models.RoleSeller {
		in.Role = models.RoleSeller
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("email", u.Email), zap.String("role", string(u.Role)))
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	access, exp, err := s.tokens.SignAccess(ctx, user.ID, string(user.Role), s.accessTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: access, ExpiresAt: exp}, nil
}

func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
