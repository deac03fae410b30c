package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrProductNotFound   = errors.New("product not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrUserNotFound      = errors.New("user not found")

	ErrSKUAlreadyExists       = errors.New("sku already exists")
	ErrWarehouseAlreadyExists = errors.New("warehouse already exists")
	ErrEmailAlreadyExists     = errors.New("email already exists")

	ErrInvalidQuantity     = errors.New("quantity must be > 0")
	ErrInvalidMovementKind = errors.New("invalid movement kind")
	ErrInvalidCurrency     = errors.New("unsupported currency")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyItems        = errors.New("sale items empty")
	ErrSaleAlreadyVoided = errors.New("sale already voided")
	ErrClientHasSales    = errors.New("client has sale history")
	ErrProductReferenced = errors.New("product is referenced by other records")
	ErrStepUpRequired    = errors.New("admin credential check failed")
)

// isForeignKeyViolation reports whether err is a referential-integrity
// failure rather than an infrastructure error. Postgres signals it as
// SQLSTATE 23503; gorm translates it when error translation is on.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
