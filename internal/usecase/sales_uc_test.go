package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phenrril/logihub/internal/domain"
)

func newSalesFixture(t *testing.T) (*SalesUC, *memProductRepo, *memSalesRepo) {
	t.Helper()
	prod := newMemProductRepo()
	sales := newMemSalesRepo(prod)
	return &SalesUC{Products: prod, Sales: sales}, prod, sales
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAppendZeroQuantityRejected(t *testing.T) {
	uc, prod, sales := newSalesFixture(t)
	require.NoError(t, prod.Save(context.Background(), &domain.Product{Name: "상품A", HaeunCode: "100", PackQty: 1}))

	out, err := uc.Append(context.Background(), day(2025, 12, 1), "100", 0, "")
	require.NoError(t, err)
	require.Equal(t, domain.SkippedZeroQuantity, out)
	require.Empty(t, sales.entries)
}

func TestAppendUnmatchedProductRejected(t *testing.T) {
	uc, _, sales := newSalesFixture(t)

	out, err := uc.Append(context.Background(), day(2025, 12, 1), "999", 5, "")
	require.NoError(t, err)
	require.Equal(t, domain.SkippedUnmatchedProduct, out)
	require.Empty(t, sales.entries)
}

func TestAppendIdempotent(t *testing.T) {
	uc, prod, sales := newSalesFixture(t)
	require.NoError(t, prod.Save(context.Background(), &domain.Product{Name: "상품A", HaeunCode: "100", PackQty: 1}))

	out, err := uc.Append(context.Background(), day(2025, 12, 1), "100", 12, "거래처A")
	require.NoError(t, err)
	require.Equal(t, domain.Inserted, out)

	out, err = uc.Append(context.Background(), day(2025, 12, 1), "100", 12, "거래처A")
	require.NoError(t, err)
	require.Equal(t, domain.SkippedDuplicate, out)

	require.Len(t, sales.entries, 1)
	require.Len(t, sales.txs, 1) // audit row only for the real insert
}

func TestAppendResolvesHankookCode(t *testing.T) {
	uc, prod, sales := newSalesFixture(t)
	require.NoError(t, prod.Save(context.Background(), &domain.Product{Name: "상품B", HankookCode: "H-55", PackQty: 1}))

	out, err := uc.Append(context.Background(), day(2025, 12, 2), "H-55", 3, "")
	require.NoError(t, err)
	require.Equal(t, domain.Inserted, out)
	require.Len(t, sales.entries, 1)
	require.Equal(t, string(domain.VendorHaeun), sales.entries[0].Company)
}

func TestAppendNormalizesRawCode(t *testing.T) {
	uc, prod, sales := newSalesFixture(t)
	require.NoError(t, prod.Save(context.Background(), &domain.Product{Name: "상품A", HaeunCode: "123", PackQty: 1}))

	out, err := uc.Append(context.Background(), day(2025, 12, 3), "123.0", 2, "")
	require.NoError(t, err)
	require.Equal(t, domain.Inserted, out)
	require.Len(t, sales.entries, 1)
}

func TestAppendNegativeQuantityAllowed(t *testing.T) {
	// returns come through as negative rows; only exact zero is rejected
	uc, prod, sales := newSalesFixture(t)
	require.NoError(t, prod.Save(context.Background(), &domain.Product{Name: "상품A", HaeunCode: "100", PackQty: 1}))

	out, err := uc.Append(context.Background(), day(2025, 12, 4), "100", -2, "반품")
	require.NoError(t, err)
	require.Equal(t, domain.Inserted, out)
	require.Len(t, sales.entries, 1)
}
