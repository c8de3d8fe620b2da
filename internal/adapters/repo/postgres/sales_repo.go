package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/phenrril/logihub/internal/domain"
)

type SalesRepo struct{ db *gorm.DB }

func NewSalesRepo(db *gorm.DB) *SalesRepo { return &SalesRepo{db: db} }

func (r *SalesRepo) Exists(ctx context.Context, date time.Time, productID uint, qty float64, remarks string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.SalesHistory{}).
		Where("date = ? AND product_id = ? AND qty = ? AND remarks = ?", date, productID, qty, remarks).
		Count(&n).Error
	return n > 0, err
}

func (r *SalesRepo) Append(ctx context.Context, e *domain.SalesHistory) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *SalesRepo) SumByProduct(ctx context.Context, start, end time.Time) ([]domain.ProductTotal, error) {
	var out []domain.ProductTotal
	err := r.db.WithContext(ctx).
		Table("sales_histories s").
		Select("p.id AS product_id, p.name, p.standard, p.unit_price, p.pack_qty, SUM(s.qty) AS total_qty").
		Joins("JOIN products p ON p.id = s.product_id").
		Where("s.date >= ? AND s.date <= ?", start, end).
		Group("p.id, p.name, p.standard, p.unit_price, p.pack_qty").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SalesRepo) EntriesForProduct(ctx context.Context, productID uint, start, end *time.Time) ([]domain.SalesHistory, error) {
	q := r.db.WithContext(ctx).Where("product_id = ?", productID)
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}
	var list []domain.SalesHistory
	if err := q.Order("date asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SalesRepo) LogTransaction(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}
