package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrFileNotFound = errors.New("source file not found")
	ErrFileLocked   = errors.New("source file in use")
)

// Product is the canonical master record. Vendor exports only carry raw
// codes; everything the views show (name, standard, price, pack qty) comes
// from here.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:180;not null"`
	HaeunCode   string  `gorm:"size:60;index"`
	HankookCode string  `gorm:"size:60;index"`
	DaisoCodes  string  `gorm:"size:255"` // delimited set, one product may carry several
	Standard    string  `gorm:"size:120"`
	UnitPrice   float64 `gorm:"type:decimal(12,2);default:0"`
	PackQty     int     `gorm:"default:1"`
	UpdatedAt   time.Time
}

// NormalizeCode strips whitespace and the trailing ".0" artifact left behind
// when numeric cells get coerced to strings.
func NormalizeCode(code string) string {
	c := strings.TrimSpace(code)
	if strings.EqualFold(c, "nan") {
		return ""
	}
	c = strings.TrimSuffix(c, ".0")
	return strings.TrimSpace(c)
}

// MasterRow is one row of the master workbook before it hits the store.
type MasterRow struct {
	HaeunCode   string
	HankookCode string
	Name        string
	Standard    string
	UnitPrice   float64
	PackQty     int
}

type UpsertOutcome string

const (
	UpsertInserted      UpsertOutcome = "inserted"
	UpsertUpdated       UpsertOutcome = "updated"
	UpsertSkippedNoCode UpsertOutcome = "skipped_no_code"
	// UpsertConflict: the row's two primary codes resolved to two different
	// existing products. The haeun match is still the one updated.
	UpsertConflict UpsertOutcome = "conflict"
)

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	// FindByVendorCode probes haeun exact, then hankook exact, then the
	// daiso code set by substring. The vendor hint does not change the
	// order; codes occasionally show up under the wrong sheet.
	FindByVendorCode(ctx context.Context, vendor Vendor, code string) (*Product, error)
	FindByHaeunCode(ctx context.Context, code string) (*Product, error)
	FindByHankookCode(ctx context.Context, code string) (*Product, error)
	// FindByPrimaryCode is the combined lookup used by the sales ledger:
	// haeun first, then hankook.
	FindByPrimaryCode(ctx context.Context, code string) (*Product, error)
	Count(ctx context.Context) (int64, error)
}
