package dto

import (
	"time"

	"github.com/Vld439/vinovault/internal/models"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type ProductResponse struct {
	ID                 uuid.UUID `json:"id"`
	SKU                string    `json:"sku"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	PurchasePriceCents int64     `json:"purchase_price_cents"`
	SalePriceCents     int64     `json:"sale_price_cents"`
	ImageURL           *string   `json:"image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		SKU:                p.SKU,
		Name:               p.Name,
		Description:        p.Description,
		PurchasePriceCents: p.PurchasePriceCents,
		SalePriceCents:     p.SalePriceCents,
		ImageURL:           p.ImageURL,
		CreatedAt:          p.CreatedAt,
	}
}

type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int64             `json:"total"`
}

type WarehouseResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewWarehouseResponse(w *models.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, Name: w.Name}
}

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Foreign   bool      `json:"foreign"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Foreign:   c.Foreign,
		CreatedAt: c.CreatedAt,
	}
}

type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int64            `json:"total"`
}

type SaleItemResponse struct {
	ProductID      uuid.UUID `json:"product_id"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
}

type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	ClientID      uuid.UUID          `json:"client_id"`
	UserID        uuid.UUID          `json:"user_id"`
	WarehouseID   uuid.UUID          `json:"warehouse_id"`
	Currency      string             `json:"currency"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TaxCents      int64              `json:"tax_cents"`
	TotalCents    int64              `json:"total_cents"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}

func NewSaleResponse(s *models.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.LineTotalCents,
		})
	}
	return SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		UserID:        s.UserID,
		WarehouseID:   s.WarehouseID,
		Currency:      s.Currency,
		SubtotalCents: s.SubtotalCents,
		TaxCents:      s.TaxCents,
		TotalCents:    s.TotalCents,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		Items:         items,
	}
}

type MovementResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Delta       int64     `json:"delta"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMovementResponse(m *models.StockMovement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Delta:       m.Delta,
		Kind:        string(m.Kind),
		CreatedAt:   m.CreatedAt,
	}
}

type QuantityResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
}

type RatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
	Stale bool               `json:"stale"`
}
