package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/phenrril/logihub/internal/adapters/excel"
	"github.com/phenrril/logihub/internal/domain"
)

type MasterUC struct {
	Products domain.ProductRepo
}

// Upsert registers or refreshes one master row. Identity is the haeun code,
// falling back to the hankook code; a row with neither is skipped. Mutable
// fields are last-write-wins.
func (uc *MasterUC) Upsert(ctx context.Context, row domain.MasterRow) (domain.UpsertOutcome, error) {
	haeun := domain.NormalizeCode(row.HaeunCode)
	hankook := domain.NormalizeCode(row.HankookCode)
	if haeun == "" && hankook == "" {
		return domain.UpsertSkippedNoCode, nil
	}

	var byHaeun, byHankook *domain.Product
	if haeun != "" {
		p, err := uc.Products.FindByHaeunCode(ctx, haeun)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		byHaeun = p
	}
	if hankook != "" {
		p, err := uc.Products.FindByHankookCode(ctx, hankook)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		byHankook = p
	}

	conflict := byHaeun != nil && byHankook != nil && byHaeun.ID != byHankook.ID
	target := byHaeun
	if target == nil {
		target = byHankook
	}

	outcome := domain.UpsertUpdated
	switch {
	case target == nil:
		target = &domain.Product{}
		outcome = domain.UpsertInserted
	case conflict:
		outcome = domain.UpsertConflict
	}

	target.Name = row.Name
	target.HaeunCode = haeun
	target.HankookCode = hankook
	target.Standard = row.Standard
	target.UnitPrice = row.UnitPrice
	target.PackQty = row.PackQty
	if target.PackQty < 1 {
		target.PackQty = 1
	}
	if err := uc.Products.Save(ctx, target); err != nil {
		return "", err
	}
	if conflict {
		log.Warn().Str("haeun", haeun).Str("hankook", hankook).Uint("kept", target.ID).
			Msg("dual-code row matched two products, updated haeun match")
	}
	return outcome, nil
}

// ImportReport summarizes one bulk master import.
type ImportReport struct {
	BatchID   string    `json:"batchId"`
	Scanned   int       `json:"scanned"`
	Inserted  int       `json:"inserted"`
	Updated   int       `json:"updated"`
	Skipped   int       `json:"skipped"`
	Conflicts int       `json:"conflicts"`
	Timestamp time.Time `json:"timestamp"`
}

// ImportWorkbook loads the whole master workbook. Re-running against the same
// file only rewrites the same rows.
func (uc *MasterUC) ImportWorkbook(ctx context.Context, path string) (*ImportReport, error) {
	rows, err := excel.ReadMaster(path)
	if err != nil {
		return nil, err
	}
	rep := &ImportReport{BatchID: uuid.NewString(), Timestamp: time.Now()}
	for _, row := range rows {
		rep.Scanned++
		out, err := uc.Upsert(ctx, row)
		if err != nil {
			return rep, err
		}
		switch out {
		case domain.UpsertInserted:
			rep.Inserted++
		case domain.UpsertUpdated:
			rep.Updated++
		case domain.UpsertConflict:
			rep.Updated++
			rep.Conflicts++
		case domain.UpsertSkippedNoCode:
			rep.Skipped++
		}
	}
	log.Info().Str("batch", rep.BatchID).Int("scanned", rep.Scanned).
		Int("inserted", rep.Inserted).Int("updated", rep.Updated).
		Int("skipped", rep.Skipped).Int("conflicts", rep.Conflicts).
		Msg("master import finished")
	return rep, nil
}
