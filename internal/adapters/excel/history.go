package excel

import (
	"strings"
	"time"

	"github.com/phenrril/logihub/internal/domain"
)

// HistoryRow is one dated sales record parsed from a 판매데이터 export.
type HistoryRow struct {
	Date    time.Time
	RawCode string
	Qty     float64
	Remarks string
}

// ReadSalesHistory reads a sales-history export. The real header sits on the
// second row (the first carries the report title); the date column looks like
// "2025/12/31 -85" where only the first token is the date. Rows with an
// unparseable date are skipped.
func ReadSalesHistory(path string) ([]HistoryRow, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 3 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, h := range rows[1] {
		name := strings.TrimSpace(h)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	var out []HistoryRow
	for _, row := range rows[2:] {
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		dateStr, _, _ := strings.Cut(get("일자-No."), " ")
		d, err := time.Parse("2006/01/02", strings.TrimSpace(dateStr))
		if err != nil {
			continue
		}
		out = append(out, HistoryRow{
			Date:    domain.DateOnly(d),
			RawCode: domain.NormalizeCode(get("품목코드")),
			Qty:     ParseQuantity(get("수량")),
			Remarks: strings.TrimSpace(get("적요") + " " + get("비고")),
		})
	}
	return out, nil
}
