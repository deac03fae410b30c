package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry. Prices are integer cents, USD canonical;
// other currencies are derived at display time from the rate cache.
type Product struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU                string    `gorm:"type:text;not null;uniqueIndex"`
	Name               string    `gorm:"type:text;not null"`
	Description        string    `gorm:"type:text"`
	PurchasePriceCents int64     `gorm:"not null;default:0"`
	SalePriceCents     int64     `gorm:"not null;default:0"`
	ImageURL           *string   `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Warehouse is static reference data.
type Warehouse struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Warehouse) TableName() string { return "warehouses" }

func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Stock is the denormalized on-hand ledger, one row per (product, warehouse).
// It is mutated only through the movement recorder so it stays equal to the
// signed sum of the movement log for the pair.
type Stock struct {
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity    int64     `gorm:"not null;default:0"`

	UpdatedAt time.Time `gorm:"not null"`
}

func (Stock) TableName() string { return "stocks" }

type MovementKind string

const (
	MovementManualIn       MovementKind = "manual-in"
	MovementManualOut      MovementKind = "manual-out"
	MovementAdjustment     MovementKind = "adjustment"
	MovementSaleOut        MovementKind = "sale-out"
	MovementSaleReversalIn MovementKind = "sale-reversal-in"
)

// ManualKind reports whether k is one of the operator-entered kinds accepted
// by the movement endpoint. Sale kinds are reserved for the sale orchestrator.
func ManualKind(k MovementKind) bool {
	return k == MovementManualIn || k == MovementManualOut || k == MovementAdjustment
}

// StockMovement is the append-only audit record of every ledger change.
// Rows are never updated or deleted.
type StockMovement struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Delta       int64        `gorm:"not null"`
	Kind        MovementKind `gorm:"type:text;not null;index"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null"`
	SaleID      *uuid.UUID   `gorm:"type:uuid;index"`
	Note        string       `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index"`
}

func (StockMovement) TableName() string { return "stock_movements" }

func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type SaleStatus string

const (
	SaleStatusActive SaleStatus = "active"
	SaleStatusVoided SaleStatus = "voided"
)

// Sale owns its items. The only permitted mutation after creation is the
// terminal active -> voided transition.
type Sale struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	WarehouseID   uuid.UUID  `gorm:"type:uuid;not null"`
	Currency      string     `gorm:"type:char(3);not null"`
	SubtotalCents int64      `gorm:"not null"`
	TaxCents      int64      `gorm:"not null"`
	TotalCents    int64      `gorm:"not null"`
	Status        SaleStatus `gorm:"type:text;not null;default:'active';index"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (Sale) TableName() string { return "sales" }

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleItem copies the unit price at the time of sale; it never references the
// live catalog price.
type SaleItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null"`
	Quantity       int64     `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"`
	LineTotalCents int64     `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (SaleItem) TableName() string { return "sale_items" }

func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Client is a buyer. Foreign clients are exempt from local tax, which the SPA
// factors into the totals it submits.
type Client struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:text;not null"`
	TaxID   string    `gorm:"type:text;not null;index"`
	Email   string    `gorm:"type:text"`
	Phone   string    `gorm:"type:text"`
	Address string    `gorm:"type:text"`
	Foreign bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	DisplayName  string    `gorm:"type:text;not null"`
	Role         Role      `gorm:"type:text;not null;default:'seller'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
