package usecase

import (
	"context"
	"errors"

	"github.com/phenrril/logihub/internal/adapters/excel"
	"github.com/phenrril/logihub/internal/domain"
)

type ReconcileUC struct {
	Products domain.ProductRepo
	Cache    *excel.Cache
}

// Reconcile binds normalized rows to canonical products. Rows whose code is
// not registered are dropped without trace; only store failures propagate.
func (uc *ReconcileUC) Reconcile(ctx context.Context, rows []domain.NormalizedRow) ([]domain.ReconciledRow, error) {
	out := make([]domain.ReconciledRow, 0, len(rows))
	for _, row := range rows {
		code := domain.NormalizeCode(row.RawCode)
		if code == "" {
			continue
		}
		p, err := uc.Products.FindByVendorCode(ctx, row.Vendor, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, domain.ReconciledRow{
			NormalizedRow: row,
			ProductID:     p.ID,
			Name:          p.Name,
			Standard:      p.Standard,
			UnitPrice:     p.UnitPrice,
			PackQty:       p.PackQty,
		})
	}
	return out, nil
}

// Snapshot is the current stock/sales view of one merged crawler export.
type Snapshot struct {
	Path  string                 `json:"path"`
	Stock []domain.ReconciledRow `json:"stock"`
	Sales []domain.ReconciledRow `json:"sales"`
}

// Snapshot normalizes the workbook (through the mtime cache) and reconciles
// both splits.
func (uc *ReconcileUC) Snapshot(ctx context.Context, path string) (*Snapshot, error) {
	sheets, err := uc.Cache.Normalize(path)
	if err != nil {
		return nil, err
	}
	stock, err := uc.Reconcile(ctx, sheets.Stock)
	if err != nil {
		return nil, err
	}
	sales, err := uc.Reconcile(ctx, sheets.Sales)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Path: path, Stock: stock, Sales: sales}, nil
}
