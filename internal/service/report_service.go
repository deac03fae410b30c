package service

import (
	"context"
	"math"
	"time"

	"github.com/Vld439/vinovault/internal/repository"
)

// SalesReport summarizes active sales in a range. Amounts are USD cents;
// converted totals use the current cached conversion factors.
type SalesReport struct {
	From          time.Time        `json:"from"`
	To            time.Time        `json:"to"`
	Count         int64            `json:"count"`
	SubtotalCents int64            `json:"subtotal_cents"`
	TaxCents      int64            `json:"tax_cents"`
	TotalCents    int64            `json:"total_cents"`
	Converted     map[string]int64 `json:"converted_total_cents,omitempty"`
	RatesStale    bool             `json:"rates_stale,omitempty"`
}

// RatesPort supplies USD->currency conversion factors. The bool reports
// whether the value is stale (served from an expired cache after a provider
// failure).
type RatesPort interface {
	Get(ctx context.Context) (map[string]float64, bool, error)
}

type ReportService interface {
	Sales(ctx context.Context, from, to time.Time) (*SalesReport, error)
}

type reportService struct {
	repo  *repository.Repository
	rates RatesPort
}

func NewReportService(repo *repository.Repository, rates RatesPort) ReportService {
	return &reportService{repo: repo, rates: rates}
}

func (s *reportService) Sales(ctx context.Context, from, to time.Time) (*SalesReport, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	totals, err := s.repo.Sales.TotalsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		From:          from,
		To:            to,
		Count:         totals.Count,
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		TotalCents:    totals.TotalCents,
	}

	// Conversion is display-only; a rate outage must not fail the report.
	factors, stale, err := s.rates.Get(ctx)
	if err != nil {
		return report, nil
	}
	report.RatesStale = stale
	report.Converted = make(map[string]int64, len(factors))
	for code, f := range factors {
		report.Converted[code] = int64(math.Round(float64(totals.TotalCents) * f))
	}
	return report, nil
}
