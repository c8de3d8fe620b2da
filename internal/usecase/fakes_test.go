package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/phenrril/logihub/internal/domain"
)

// In-memory repo substitutes. The usecases only see the domain interfaces,
// so these stand in for the postgres adapters.

type memProductRepo struct {
	nextID   uint
	products []*domain.Product
}

func newMemProductRepo() *memProductRepo { return &memProductRepo{nextID: 1} }

func (r *memProductRepo) Save(_ context.Context, p *domain.Product) error {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
		cp := *p
		r.products = append(r.products, &cp)
		return nil
	}
	for i, e := range r.products {
		if e.ID == p.ID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *memProductRepo) FindByHaeunCode(_ context.Context, code string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.HaeunCode != "" && p.HaeunCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProductRepo) FindByHankookCode(_ context.Context, code string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.HankookCode != "" && p.HankookCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProductRepo) FindByPrimaryCode(ctx context.Context, code string) (*domain.Product, error) {
	if p, err := r.FindByHaeunCode(ctx, code); err == nil {
		return p, nil
	}
	return r.FindByHankookCode(ctx, code)
}

func (r *memProductRepo) FindByVendorCode(ctx context.Context, _ domain.Vendor, code string) (*domain.Product, error) {
	if p, err := r.FindByPrimaryCode(ctx, code); err == nil {
		return p, nil
	}
	for _, p := range r.products {
		if p.DaisoCodes != "" && strings.Contains(p.DaisoCodes, code) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type memSalesRepo struct {
	nextID  uint
	entries []domain.SalesHistory
	txs     []domain.Transaction
	prod    *memProductRepo
}

func newMemSalesRepo(prod *memProductRepo) *memSalesRepo {
	return &memSalesRepo{nextID: 1, prod: prod}
}

func (r *memSalesRepo) Exists(_ context.Context, date time.Time, productID uint, qty float64, remarks string) (bool, error) {
	for _, e := range r.entries {
		if e.Date.Equal(date) && e.ProductID == productID && e.Qty == qty && e.Remarks == remarks {
			return true, nil
		}
	}
	return false, nil
}

func (r *memSalesRepo) Append(_ context.Context, e *domain.SalesHistory) error {
	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memSalesRepo) SumByProduct(_ context.Context, start, end time.Time) ([]domain.ProductTotal, error) {
	sums := map[uint]float64{}
	for _, e := range r.entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		sums[e.ProductID] += e.Qty
	}
	var out []domain.ProductTotal
	for _, p := range r.prod.products {
		total, ok := sums[p.ID]
		if !ok {
			continue
		}
		out = append(out, domain.ProductTotal{
			ProductID: p.ID,
			Name:      p.Name,
			Standard:  p.Standard,
			UnitPrice: p.UnitPrice,
			PackQty:   p.PackQty,
			TotalQty:  total,
		})
	}
	return out, nil
}

func (r *memSalesRepo) EntriesForProduct(_ context.Context, productID uint, start, end *time.Time) ([]domain.SalesHistory, error) {
	var out []domain.SalesHistory
	for _, e := range r.entries {
		if e.ProductID != productID {
			continue
		}
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && e.Date.After(*end) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memSalesRepo) LogTransaction(_ context.Context, t *domain.Transaction) error {
	r.txs = append(r.txs, *t)
	return nil
}
