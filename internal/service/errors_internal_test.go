package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", Message: `update or delete on table "products" violates foreign key constraint`}
	if !isForeignKeyViolation(fk) {
		t.Fatal("SQLSTATE 23503 must classify as a foreign key violation")
	}
	if !isForeignKeyViolation(fmt.Errorf("delete product: %w", fk)) {
		t.Fatal("wrapped 23503 must still classify")
	}
	if !isForeignKeyViolation(gorm.ErrForeignKeyViolated) {
		t.Fatal("gorm translated FK error must classify")
	}

	if isForeignKeyViolation(&pgconn.PgError{Code: "57P01", Message: "terminating connection"}) {
		t.Fatal("an admin shutdown is not a foreign key violation")
	}
	if isForeignKeyViolation(errors.New("dial tcp: connection refused")) {
		t.Fatal("an infrastructure error is not a foreign key violation")
	}
}
