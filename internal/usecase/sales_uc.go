package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/logihub/internal/adapters/excel"
	"github.com/phenrril/logihub/internal/domain"
)

type SalesUC struct {
	Products domain.ProductRepo
	Sales    domain.SalesRepo
}

// Append records one dated sale. Outcomes are resolved in order: zero
// quantity, unmatched product, duplicate tuple, insert. Re-running the same
// import is a no-op thanks to the (date, product, qty, remarks) dedup key.
func (uc *SalesUC) Append(ctx context.Context, date time.Time, rawCode string, qty float64, remarks string) (domain.AppendOutcome, error) {
	if qty == 0 {
		return domain.SkippedZeroQuantity, nil
	}
	code := domain.NormalizeCode(rawCode)
	if code == "" {
		return domain.SkippedUnmatchedProduct, nil
	}
	p, err := uc.Products.FindByPrimaryCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.SkippedUnmatchedProduct, nil
		}
		return "", err
	}

	date = domain.DateOnly(date)
	remarks = strings.TrimSpace(remarks)
	dup, err := uc.Sales.Exists(ctx, date, p.ID, qty, remarks)
	if err != nil {
		return "", err
	}
	if dup {
		return domain.SkippedDuplicate, nil
	}

	e := &domain.SalesHistory{
		Date:      date,
		Company:   string(domain.VendorHaeun),
		ProductID: p.ID,
		Qty:       qty,
		Remarks:   remarks,
	}
	if err := uc.Sales.Append(ctx, e); err != nil {
		return "", err
	}
	// raw audit trail, write-only
	_ = uc.Sales.LogTransaction(ctx, &domain.Transaction{
		Date:      date,
		Type:      "sales_import",
		Company:   e.Company,
		RawCode:   code,
		ProductID: p.ID,
		Qty:       qty,
	})
	return domain.Inserted, nil
}

// SalesImportReport summarizes one bulk history import.
type SalesImportReport struct {
	BatchID    string    `json:"batchId"`
	Scanned    int       `json:"scanned"`
	Inserted   int       `json:"inserted"`
	Duplicates int       `json:"duplicates"`
	Unmatched  int       `json:"unmatched"`
	ZeroQty    int       `json:"zeroQty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ImportWorkbook loads a 판매데이터 export into the ledger.
func (uc *SalesUC) ImportWorkbook(ctx context.Context, path string) (*SalesImportReport, error) {
	rows, err := excel.ReadSalesHistory(path)
	if err != nil {
		return nil, err
	}
	rep := &SalesImportReport{BatchID: uuid.NewString(), Timestamp: time.Now()}
	for _, row := range rows {
		rep.Scanned++
		out, err := uc.Append(ctx, row.Date, row.RawCode, row.Qty, row.Remarks)
		if err != nil {
			return rep, err
		}
		switch out {
		case domain.Inserted:
			rep.Inserted++
		case domain.SkippedDuplicate:
			rep.Duplicates++
		case domain.SkippedUnmatchedProduct:
			rep.Unmatched++
		case domain.SkippedZeroQuantity:
			rep.ZeroQty++
		}
	}
	log.Info().Str("batch", rep.BatchID).Int("scanned", rep.Scanned).
		Int("inserted", rep.Inserted).Int("duplicates", rep.Duplicates).
		Int("unmatched", rep.Unmatched).Int("zero_qty", rep.ZeroQty).
		Msg("sales history import finished")
	return rep, nil
}
