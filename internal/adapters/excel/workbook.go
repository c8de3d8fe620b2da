package excel

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/phenrril/logihub/internal/domain"
)

// headerScanRows limits how deep the header search goes; vendor exports put
// the header somewhere in the first few rows, after titles and print dates.
const headerScanRows = 10

// NormalizedSheets holds the workbook reduced to uniform rows, split by kind.
type NormalizedSheets struct {
	Stock []domain.NormalizedRow
	Sales []domain.NormalizedRow
}

// Normalize reads every sheet of the workbook at path. Sheets that cannot be
// read or lack the code/quantity columns are skipped; the rest of the
// workbook still processes.
func Normalize(path string) (*NormalizedSheets, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return normalize(f), nil
}

// NormalizeReader is Normalize over an in-memory workbook (uploads).
func NormalizeReader(r io.Reader) (*NormalizedSheets, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return normalize(f), nil
}

func normalize(f *excelize.File) *NormalizedSheets {
	out := &NormalizedSheets{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warn().Str("sheet", sheet).Err(err).Msg("sheet read failed, skipping")
			continue
		}
		if len(rows) == 0 {
			continue
		}

		var header []string
		var data [][]string
		if idx := findHeaderRow(rows); idx >= 0 {
			header = rows[idx]
			data = rows[idx+1:]
		} else {
			// best effort: the first row may already be the header
			header = rows[0]
			data = rows[1:]
		}

		codeCol, qtyCol := -1, -1
		for i, h := range header {
			hh := strings.TrimSpace(h)
			if codeCol < 0 && strings.Contains(hh, "코드") {
				codeCol = i
			}
			if qtyCol < 0 && (strings.Contains(hh, "수량") || strings.Contains(hh, "재고")) {
				qtyCol = i
			}
		}
		if codeCol < 0 || qtyCol < 0 {
			log.Debug().Str("sheet", sheet).Msg("code or quantity column missing, skipping sheet")
			continue
		}

		vendor := domain.ClassifySheetVendor(sheet)
		kind := domain.ClassifySheetKind(sheet)
		for _, row := range data {
			if codeCol >= len(row) {
				continue
			}
			code := strings.TrimSpace(row[codeCol])
			if code == "" {
				continue
			}
			qty := 0.0
			if qtyCol < len(row) {
				qty = ParseQuantity(row[qtyCol])
			}
			nr := domain.NormalizedRow{Vendor: vendor, RawCode: code, Quantity: qty, Kind: kind}
			if kind == domain.SheetSales {
				out.Sales = append(out.Sales, nr)
			} else {
				out.Stock = append(out.Stock, nr)
			}
		}
	}
	return out
}

// findHeaderRow scans the first rows for one that carries the code token
// together with a quantity-ish token. Returns -1 when none qualifies.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		joined := strings.Join(rows[i], " ")
		if strings.Contains(joined, "코드") &&
			(strings.Contains(joined, "수량") || strings.Contains(joined, "재고") || strings.Contains(joined, "입수")) {
			return i
		}
	}
	return -1
}

// ParseQuantity strips thousands separators and coerces to a number.
// Malformed values become 0, never an error.
func ParseQuantity(s string) float64 {
	v := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return n
}

func openWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, domain.ErrFileNotFound
		case errors.Is(err, os.ErrPermission),
			strings.Contains(err.Error(), "used by another process"):
			// Excel keeps exports open with a share lock
			return nil, domain.ErrFileLocked
		default:
			return nil, err
		}
	}
	return f, nil
}
