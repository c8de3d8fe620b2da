package usecase

import (
	"context"
	"time"

	"github.com/phenrril/logihub/internal/domain"
)

type StatsUC struct {
	Sales domain.SalesRepo
}

// monthDays: run-rate months are a fixed 30-day approximation, not calendar
// months.
const monthDays = 30.0

// Analyze computes per-product totals and run-rates over the caller's
// inclusive window. Products with no sales in the window are absent.
func (uc *StatsUC) Analyze(ctx context.Context, start, end time.Time) ([]domain.PerProductStats, error) {
	start, end = domain.DateOnly(start), domain.DateOnly(end)
	totals, err := uc.Sales.SumByProduct(ctx, start, end)
	if err != nil {
		return nil, err
	}
	days, months := spanOf(start, end)
	out := make([]domain.PerProductStats, 0, len(totals))
	for _, t := range totals {
		out = append(out, domain.PerProductStats{
			ProductID:  t.ProductID,
			Name:       t.Name,
			Standard:   t.Standard,
			UnitPrice:  t.UnitPrice,
			PackQty:    t.PackQty,
			TotalQty:   t.TotalQty,
			MonthlyAvg: t.TotalQty / months,
			DailyAvg:   t.TotalQty / float64(days),
		})
	}
	return out, nil
}

// ProductStats averages over the observed min-max span of matching entries,
// not the requested window; Analyze averages over the caller's window. The
// two operations deliberately keep their distinct semantics.
func (uc *StatsUC) ProductStats(ctx context.Context, productID uint, start, end *time.Time) (domain.ProductSalesStats, error) {
	entries, err := uc.Sales.EntriesForProduct(ctx, productID, start, end)
	if err != nil {
		return domain.ProductSalesStats{}, err
	}
	if len(entries) == 0 {
		return domain.ProductSalesStats{}, nil
	}

	total := 0.0
	min, max := entries[0].Date, entries[0].Date
	for _, e := range entries {
		total += e.Qty
		if e.Date.Before(min) {
			min = e.Date
		}
		if e.Date.After(max) {
			max = e.Date
		}
	}
	days, months := spanOf(min, max)
	return domain.ProductSalesStats{
		TotalQty:   total,
		MonthlyAvg: total / months,
		DailyAvg:   total / float64(days),
	}, nil
}

// spanOf returns the inclusive day count and its 30-day-month equivalent.
// A degenerate span counts as a single day.
func spanOf(start, end time.Time) (int, float64) {
	days := int(end.Sub(start).Hours()/24) + 1
	months := float64(days) / monthDays
	if days <= 0 {
		days = 1
		months = 1
	}
	return days, months
}
