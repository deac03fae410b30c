package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"omitempty,oneof=admin seller"`
}

type CreateProductRequest struct {
	SKU                string  `json:"sku" binding:"required"`
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	PurchasePriceCents int64   `json:"purchase_price_cents" binding:"min=0"`
	SalePriceCents     int64   `json:"sale_price_cents" binding:"min=0"`
	ImageURL           *string `json:"image_url"`
}

type UpdateProductRequest struct {
	SKU                *string `json:"sku"`
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	PurchasePriceCents *int64  `json:"purchase_price_cents"`
	SalePriceCents     *int64  `json:"sale_price_cents"`
	ImageURL           *string `json:"image_url"`
}

type CreateWarehouseRequest struct {
	Name string `json:"name" binding:"required"`
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"tax_id" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Foreign bool   `json:"foreign"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"tax_id"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Foreign *bool   `json:"foreign"`
}

type MovementRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	Quantity    int64     `json:"quantity" binding:"required"`
	Kind        string    `json:"kind" binding:"required,oneof=manual-in manual-out adjustment"`
	Note        string    `json:"note"`
}

type SaleItemRequest struct {
	ProductID      uuid.UUID `json:"product_id" binding:"required"`
	Quantity       int64     `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents int64     `json:"unit_price_cents" binding:"min=0"`
}

type CreateSaleRequest struct {
	ClientID      uuid.UUID         `json:"client_id" binding:"required"`
	WarehouseID   uuid.UUID         `json:"warehouse_id" binding:"required"`
	Currency      string            `json:"currency" binding:"required,oneof=USD PYG BRL"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	SubtotalCents int64             `json:"subtotal_cents" binding:"min=0"`
	TaxCents      int64             `json:"tax_cents" binding:"min=0"`
	TotalCents    int64             `json:"total_cents" binding:"min=0"`
}

// VoidSaleRequest carries the step-up credential re-checked server-side.
type VoidSaleRequest struct {
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required"`
}
