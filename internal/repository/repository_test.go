package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/repository"
	"github.com/Vld439/vinovault/internal/testutil"

	"github.com/google/uuid"
)

func seedUser(t *testing.T, repos *repository.Repository, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		DisplayName:  "Test User",
		Role:         role,
	}
	if err := repos.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedProduct(t *testing.T, repos *repository.Repository, sku string) *models.Product {
	t.Helper()
	p := &models.Product{
		SKU:            sku,
		Name:           "Malbec Reserva " + sku,
		SalePriceCents: 2500,
	}
	if err := repos.Products.Create(context.Background(), p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func seedWarehouse(t *testing.T, repos *repository.Repository, name string) *models.Warehouse {
	t.Helper()
	w := &models.Warehouse{Name: name}
	if err := repos.Warehouses.Create(context.Background(), w); err != nil {
		t.Fatalf("create warehouse: %v", err)
	}
	return w
}

func seedClient(t *testing.T, repos *repository.Repository) *models.Client {
	t.Helper()
	c := &models.Client{Name: "Bodega Central", TaxID: "80012345-6"}
	if err := repos.Clients.Create(context.Background(), c); err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func TestProductRepo_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	p := seedProduct(t, repos, "VIN-001")

	got, err := repos.Products.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.SKU != "VIN-001" {
		t.Fatalf("GetByID mismatch: %+v", got)
	}

	bySKU, err := repos.Products.GetBySKU(ctx, "vin-001")
	if err != nil {
		t.Fatalf("GetBySKU: %v", err)
	}
	if bySKU == nil || bySKU.ID != p.ID {
		t.Fatalf("GetBySKU should be case-insensitive: %+v", bySKU)
	}

	if err := repos.Products.UpdateFields(ctx, p.ID, map[string]any{
		"name":             "Malbec Gran Reserva",
		"sale_price_cents": int64(3200),
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	updated, _ := repos.Products.GetByID(ctx, p.ID)
	if updated.Name != "Malbec Gran Reserva" || updated.SalePriceCents != 3200 {
		t.Fatalf("UpdateFields mismatch: %+v", updated)
	}

	deleted, err := repos.Products.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected deleted=true")
	}
	deleted2, err := repos.Products.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete second: %v", err)
	}
	if deleted2 {
		t.Fatal("expected deleted2=false")
	}
}

func TestProductRepo_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	seedProduct(t, repos, "VIN-A")
	seedProduct(t, repos, "VIN-B")
	cab := &models.Product{SKU: "CAB-C", Name: "Cabernet Estate"}
	if err := repos.Products.Create(ctx, cab); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, total, err := repos.Products.List(ctx, repository.ProductListFilter{Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("List all: total=%d len=%d", total, len(all))
	}

	hits, total, err := repos.Products.List(ctx, repository.ProductListFilter{Query: "Cabernet", Limit: 10})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if total != 1 || len(hits) != 1 || hits[0].ID != cab.ID {
		t.Fatalf("filter mismatch: total=%d %+v", total, hits)
	}

	page, total, err := repos.Products.List(ctx, repository.ProductListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List paged: %v", err)
	}
	if total != 3 || len(page) != 1 {
		t.Fatalf("paging mismatch: total=%d len=%d", total, len(page))
	}
}

func TestStockRepo_ApplyDelta(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	p := seedProduct(t, repos, "VIN-010")
	w := seedWarehouse(t, repos, "Depósito Central")

	// first delta inserts the row
	if err := repos.Stocks.ApplyDelta(ctx, p.ID, w.ID, 10); err != nil {
		t.Fatalf("ApplyDelta insert: %v", err)
	}
	// later deltas accumulate
	if err := repos.Stocks.ApplyDelta(ctx, p.ID, w.ID, -4); err != nil {
		t.Fatalf("ApplyDelta update: %v", err)
	}

	st, err := repos.Stocks.Get(ctx, p.ID, w.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if st == nil || st.Quantity != 6 {
		t.Fatalf("expected quantity 6, got %+v", st)
	}

	missing, err := repos.Stocks.Get(ctx, uuid.New(), w.ID)
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing pair, got %+v", missing)
	}
}

func TestStockRepo_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	p := seedProduct(t, repos, "VIN-020")
	w1 := seedWarehouse(t, repos, "Central")
	w2 := seedWarehouse(t, repos, "Sucursal")

	if err := repos.Stocks.ApplyDelta(ctx, p.ID, w1.ID, 3); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if err := repos.Stocks.ApplyDelta(ctx, p.ID, w2.ID, 7); err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}

	all, err := repos.Stocks.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}

	only, err := repos.Stocks.List(ctx, &w2.ID)
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(only) != 1 || only[0].Quantity != 7 || only[0].Warehouse != "Sucursal" {
		t.Fatalf("filtered mismatch: %+v", only)
	}
}

func TestMovementRepo_HistoryAndSums(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	u := seedUser(t, repos, models.RoleSeller)
	p := seedProduct(t, repos, "VIN-030")
	w := seedWarehouse(t, repos, "Central")

	base := time.Now().Add(-time.Hour)
	for i, delta := range []int64{10, -3, 5} {
		m := &models.StockMovement{
			ProductID:   p.ID,
			WarehouseID: w.ID,
			Delta:       delta,
			Kind:        models.MovementAdjustment,
			UserID:      u.ID,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := repos.Movements.Append(ctx, m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	hist, err := repos.Movements.History(ctx, 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(hist))
	}
	// newest first
	if hist[0].Delta != 5 || hist[1].Delta != -3 {
		t.Fatalf("order mismatch: %+v", hist)
	}
	if hist[0].SKU != "VIN-030" || hist[0].UserEmail != u.Email {
		t.Fatalf("join mismatch: %+v", hist[0])
	}

	sums, err := repos.Movements.SumByPair(ctx)
	if err != nil {
		t.Fatalf("SumByPair: %v", err)
	}
	if len(sums) != 1 || sums[0].Total != 12 {
		t.Fatalf("expected one pair with total 12, got %+v", sums)
	}
}

func TestSaleRepo_MarkVoidedGuard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	u := seedUser(t, repos, models.RoleSeller)
	c := seedClient(t, repos)
	w := seedWarehouse(t, repos, "Central")
	p := seedProduct(t, repos, "VIN-040")

	sale := &models.Sale{
		ClientID:      c.ID,
		UserID:        u.ID,
		WarehouseID:   w.ID,
		Currency:      "USD",
		SubtotalCents: 5000,
		TotalCents:    5500,
		TaxCents:      500,
		Status:        models.SaleStatusActive,
		Items: []models.SaleItem{
			{ProductID: p.ID, Quantity: 2, UnitPriceCents: 2500, LineTotalCents: 5000},
		},
	}
	if err := repos.Sales.Create(ctx, sale); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repos.Sales.GetByID(ctx, sale.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("items not preloaded: %+v", got)
	}

	ok, err := repos.Sales.MarkVoided(ctx, sale.ID)
	if err != nil {
		t.Fatalf("MarkVoided: %v", err)
	}
	if !ok {
		t.Fatal("expected first void to succeed")
	}

	// second void must not match any row
	ok, err = repos.Sales.MarkVoided(ctx, sale.ID)
	if err != nil {
		t.Fatalf("MarkVoided second: %v", err)
	}
	if ok {
		t.Fatal("expected second void to report no rows")
	}

	exists, err := repos.Sales.ExistsForClient(ctx, c.ID)
	if err != nil {
		t.Fatalf("ExistsForClient: %v", err)
	}
	if !exists {
		t.Fatal("expected sale to count for client")
	}
}

func TestSaleRepo_TotalsInRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	u := seedUser(t, repos, models.RoleSeller)
	c := seedClient(t, repos)
	w := seedWarehouse(t, repos, "Central")

	mk := func(total int64, at time.Time, status models.SaleStatus) {
		s := &models.Sale{
			ClientID:      c.ID,
			UserID:        u.ID,
			WarehouseID:   w.ID,
			Currency:      "USD",
			SubtotalCents: total,
			TotalCents:    total,
			Status:        status,
			CreatedAt:     at,
			UpdatedAt:     at,
		}
		if err := repos.Sales.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	now := time.Now()
	mk(1000, now.Add(-2*time.Hour), models.SaleStatusActive)
	mk(2000, now.Add(-1*time.Hour), models.SaleStatusActive)
	mk(4000, now.Add(-1*time.Hour), models.SaleStatusVoided)  // excluded
	mk(8000, now.Add(-48*time.Hour), models.SaleStatusActive) // out of range

	totals, err := repos.Sales.TotalsInRange(ctx, now.Add(-3*time.Hour), now)
	if err != nil {
		t.Fatalf("TotalsInRange: %v", err)
	}
	if totals.Count != 2 || totals.TotalCents != 3000 {
		t.Fatalf("totals mismatch: %+v", totals)
	}
}

func TestUserRepo_EmailLookup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.New(db)
	ctx := context.Background()

	u := &models.User{
		Email:        "vendedor@vinovault.test",
		PasswordHash: "x",
		DisplayName:  "Vendedor",
		Role:         models.RoleSeller,
	}
	if err := repos.Users.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repos.Users.GetByEmail(ctx, "Vendedor@VinoVault.test")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("case-insensitive lookup failed: %+v", got)
	}

	exists, err := repos.Users.ExistsByEmail(ctx, "vendedor@vinovault.test")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
}
