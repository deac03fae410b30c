package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vld439/vinovault/internal/models"
	"github.com/Vld439/vinovault/internal/service"
)

type fakeRates struct {
	factors map[string]float64
	stale   bool
	err     error
}

func (r *fakeRates) Get(ctx context.Context) (map[string]float64, bool, error) {
	return r.factors, r.stale, r.err
}

func seedSales(t *testing.T, f *fixture) {
	t.Helper()
	inv := service.NewInventoryService(f.repos, true)
	sales := service.NewSaleService(f.repos, testHasher)
	ctx := f.sellerCtx()

	p := f.product(t, "REP-001")
	w := f.warehouse(t, "Central")
	c := f.client(t)

	if _, err := inv.Adjust(ctx, service.AdjustInput{
		ProductID: p.ID, WarehouseID: w.ID, Quantity: 20, Kind: models.MovementManualIn,
	}); err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	for _, total := range []int64{1000, 2000} {
		if _, err := sales.Create(ctx, service.CreateSaleInput{
			ClientID:    c.ID,
			WarehouseID: w.ID,
			Currency:    "USD",
			Items: []service.SaleLineInput{
				{ProductID: p.ID, Quantity: 1, UnitPriceCents: total},
			},
			SubtotalCents: total,
			TotalCents:    total,
		}); err != nil {
			t.Fatalf("Create sale: %v", err)
		}
	}
}

func TestReportSales(t *testing.T) {
	f := setup(t)
	seedSales(t, f)

	rates := &fakeRates{factors: map[string]float64{"PYG": 7300.0, "BRL": 5.0}}
	svc := service.NewReportService(f.repos, rates)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	report, err := svc.Sales(f.adminCtx(), from, to)
	if err != nil {
		t.Fatalf("Sales: %v", err)
	}
	if report.Count != 2 || report.TotalCents != 3000 {
		t.Fatalf("totals mismatch: %+v", report)
	}
	if report.Converted["PYG"] != 21900000 || report.Converted["BRL"] != 15000 {
		t.Fatalf("conversion mismatch: %+v", report.Converted)
	}
	if report.RatesStale {
		t.Fatal("rates were fresh")
	}
}

func TestReportSales_RateOutage(t *testing.T) {
	f := setup(t)
	seedSales(t, f)

	svc := service.NewReportService(f.repos, &fakeRates{err: errors.New("provider down")})

	report, err := svc.Sales(f.adminCtx(), time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("a rate outage must not fail the report: %v", err)
	}
	if report.TotalCents != 3000 || report.Converted != nil {
		t.Fatalf("expected plain USD report, got %+v", report)
	}
}

func TestReportSales_StaleFlag(t *testing.T) {
	f := setup(t)
	seedSales(t, f)

	svc := service.NewReportService(f.repos, &fakeRates{
		factors: map[string]float64{"BRL": 5.0},
		stale:   true,
	})

	report, err := svc.Sales(f.adminCtx(), time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Sales: %v", err)
	}
	if !report.RatesStale {
		t.Fatal("stale flag must propagate")
	}

	if _, err := svc.Sales(f.sellerCtx(), time.Now().Add(-time.Hour), time.Now()); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("seller must not read reports, got %v", err)
	}
}
