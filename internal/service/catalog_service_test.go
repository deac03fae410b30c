package service_test

import (
	"errors"
	"testing"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"
	"github.com/Vld439/vinovault/internal/service"

	"github.com/google/uuid"
)

func TestCatalogCreateProduct(t *testing.T) {
	f := setup(t)
	svc := service.NewCatalogService(f.repos)

	p, err := svc.CreateProduct(f.adminCtx(), service.ProductInput{
		SKU:            "  CAB-100 ",
		Name:           " Cabernet Roble ",
		SalePriceCents: 4500,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.SKU != "CAB-100" || p.Name != "Cabernet Roble" {
		t.Fatalf("fields not trimmed: %+v", p)
	}

	// duplicate SKU, case-insensitive
	if _, err := svc.CreateProduct(f.adminCtx(), service.ProductInput{
		SKU: "cab-100", Name: "Otro",
	}); !errors.Is(err, service.ErrSKUAlreadyExists) {
		t.Fatalf("expected ErrSKUAlreadyExists, got %v", err)
	}

	if _, err := svc.CreateProduct(f.sellerCtx(), service.ProductInput{
		SKU: "CAB-101", Name: "X",
	}); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("seller must not create products, got %v", err)
	}
}

func TestCatalogUpdateProduct(t *testing.T) {
	f := setup(t)
	svc := service.NewCatalogService(f.repos)

	p := f.product(t, "CAB-110")
	other := f.product(t, "CAB-111")

	name := "Cabernet Gran Reserva"
	price := int64(9900)
	updated, err := svc.UpdateProduct(f.adminCtx(), p.ID, service.ProductPatch{
		Name:           &name,
		SalePriceCents: &price,
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != name || updated.SalePriceCents != price {
		t.Fatalf("patch not applied: %+v", updated)
	}

	taken := other.SKU
	if _, err := svc.UpdateProduct(f.adminCtx(), p.ID, service.ProductPatch{SKU: &taken}); !errors.Is(err, service.ErrSKUAlreadyExists) {
		t.Fatalf("expected ErrSKUAlreadyExists, got %v", err)
	}

	if _, err := svc.UpdateProduct(f.adminCtx(), uuid.New(), service.ProductPatch{Name: &name}); !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogWarehouses(t *testing.T) {
	f := setup(t)
	svc := service.NewCatalogService(f.repos)

	w, err := svc.CreateWarehouse(f.adminCtx(), " Depósito Central ")
	if err != nil {
		t.Fatalf("CreateWarehouse: %v", err)
	}
	if w.Name != "Depósito Central" {
		t.Fatalf("name not trimmed: %q", w.Name)
	}

	if _, err := svc.CreateWarehouse(f.adminCtx(), "Depósito Central"); !errors.Is(err, service.ErrWarehouseAlreadyExists) {
		t.Fatalf("expected ErrWarehouseAlreadyExists, got %v", err)
	}
	if _, err := svc.CreateWarehouse(f.sellerCtx(), "Sucursal"); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("seller must not create warehouses, got %v", err)
	}

	list, err := svc.ListWarehouses(f.sellerCtx())
	if err != nil {
		t.Fatalf("ListWarehouses: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 warehouse, got %d", len(list))
	}
}

func TestClientLifecycle(t *testing.T) {
	f := setup(t)
	svc := service.NewClientService(f.repos)

	c, err := svc.Create(f.sellerCtx(), service.ClientInput{
		Name:  " Importadora Este ",
		TaxID: "80055443-2",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Name != "Importadora Este" {
		t.Fatalf("name not trimmed: %q", c.Name)
	}

	foreign := true
	updated, err := svc.Update(f.sellerCtx(), c.ID, service.ClientPatch{Foreign: &foreign})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Foreign {
		t.Fatalf("patch not applied: %+v", updated)
	}

	list, total, err := svc.List(f.sellerCtx(), repository.ClientListFilter{Query: "Importadora", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("list mismatch: total=%d len=%d", total, len(list))
	}

	if err := svc.Delete(f.sellerCtx(), c.ID); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("seller must not delete clients, got %v", err)
	}
	if err := svc.Delete(f.adminCtx(), c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(f.adminCtx(), c.ID); !errors.Is(err, service.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientDelete_BlockedBySales(t *testing.T) {
	f := setup(t)
	clients := service.NewClientService(f.repos)
	inv := service.NewInventoryService(f.repos, true)
	sales := service.NewSaleService(f.repos, testHasher)
	ctx := f.sellerCtx()

	p := f.product(t, "CAB-120")
	w := f.warehouse(t, "Central")
	c := f.client(t)

	if _, err := inv.Adjust(ctx, service.AdjustInput{
		ProductID: p.ID, WarehouseID: w.ID, Quantity: 3, Kind: models.MovementManualIn,
	}); err != nil {
		t.Fatalf("seed stock: %v", err)
	}
	if _, err := sales.Create(ctx, service.CreateSaleInput{
		ClientID:    c.ID,
		WarehouseID: w.ID,
		Currency:    "USD",
		Items: []service.SaleLineInput{
			{ProductID: p.ID, Quantity: 1, UnitPriceCents: 3000},
		},
	}); err != nil {
		t.Fatalf("Create sale: %v", err)
	}

	if err := clients.Delete(f.adminCtx(), c.ID); !errors.Is(err, service.ErrClientHasSales) {
		t.Fatalf("expected ErrClientHasSales, got %v", err)
	}
}
