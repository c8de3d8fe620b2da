package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/phenrril/logihub/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepo) first(ctx context.Context, query string, args ...interface{}) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).Where(query, args...).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) FindByHaeunCode(ctx context.Context, code string) (*domain.Product, error) {
	return r.first(ctx, "haeun_code = ? AND haeun_code <> ''", code)
}

func (r *ProductRepo) FindByHankookCode(ctx context.Context, code string) (*domain.Product, error) {
	return r.first(ctx, "hankook_code = ? AND hankook_code <> ''", code)
}

// FindByPrimaryCode resolves the sales-ledger lookup: haeun first, then
// hankook.
func (r *ProductRepo) FindByPrimaryCode(ctx context.Context, code string) (*domain.Product, error) {
	p, err := r.FindByHaeunCode(ctx, code)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return r.FindByHankookCode(ctx, code)
}

// FindByVendorCode probes haeun exact, hankook exact, then the daiso code set
// by substring. Order is fixed regardless of the vendor hint.
func (r *ProductRepo) FindByVendorCode(ctx context.Context, vendor domain.Vendor, code string) (*domain.Product, error) {
	p, err := r.FindByPrimaryCode(ctx, code)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return r.first(ctx, "daiso_codes LIKE ? AND daiso_codes <> ''", "%"+code+"%")
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}
