package domain

import (
	"context"
	"time"
)

// SalesHistory is append-only. Rows are created through the import path and
// never mutated or deleted afterwards.
type SalesHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Date      time.Time `gorm:"type:date;index"`
	Company   string    `gorm:"size:60"`
	ProductID uint      `gorm:"index"`
	Qty       float64
	Remarks   string `gorm:"size:255"`
}

// Transaction is a write-only audit log of raw imported rows. Nothing in the
// core reads it back; import tooling expects the table to exist.
type Transaction struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Date      time.Time `gorm:"type:date"`
	Type      string    `gorm:"size:30"`
	Company   string    `gorm:"size:60"`
	RawCode   string    `gorm:"size:60"`
	ProductID uint
	Qty       float64
}

type AppendOutcome string

const (
	Inserted                AppendOutcome = "inserted"
	SkippedDuplicate        AppendOutcome = "skipped_duplicate"
	SkippedUnmatchedProduct AppendOutcome = "skipped_unmatched"
	SkippedZeroQuantity     AppendOutcome = "skipped_zero_qty"
)

// PerProductStats is one row of the period analysis view.
type PerProductStats struct {
	ProductID  uint    `json:"productId"`
	Name       string  `json:"name"`
	Standard   string  `json:"standard"`
	UnitPrice  float64 `json:"unitPrice"`
	PackQty    int     `json:"packQty"`
	TotalQty   float64 `json:"totalQty"`
	MonthlyAvg float64 `json:"monthlyAvg"`
	DailyAvg   float64 `json:"dailyAvg"`
}

// ProductSalesStats is the single-product variant. Zero-valued when no rows
// match.
type ProductSalesStats struct {
	TotalQty   float64 `json:"totalQty"`
	MonthlyAvg float64 `json:"monthlyAvg"`
	DailyAvg   float64 `json:"dailyAvg"`
}

// ProductTotal is the grouped sum the analysis query returns per product.
type ProductTotal struct {
	ProductID uint
	Name      string
	Standard  string
	UnitPrice float64
	PackQty   int
	TotalQty  float64
}

type SalesRepo interface {
	Exists(ctx context.Context, date time.Time, productID uint, qty float64, remarks string) (bool, error)
	Append(ctx context.Context, e *SalesHistory) error
	SumByProduct(ctx context.Context, start, end time.Time) ([]ProductTotal, error)
	// EntriesForProduct returns rows ordered by date; nil bounds mean open.
	EntriesForProduct(ctx context.Context, productID uint, start, end *time.Time) ([]SalesHistory, error)
	LogTransaction(ctx context.Context, t *Transaction) error
}

// DateOnly drops the time component; ledger dates are calendar dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
