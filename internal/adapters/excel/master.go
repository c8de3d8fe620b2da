package excel

import (
	"strings"

	"github.com/phenrril/logihub/internal/domain"
)

// ReadMaster reads the canonical master workbook: one flat table, header on
// the first row. Header names are stripped of spaces and newlines before
// matching, and the VAT-qualified price header folds into the plain one.
func ReadMaster(path string) ([]domain.MasterRow, error) {
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
	if len(rows) < 2 {
		return nil, nil
	}

	clean := strings.NewReplacer("\n", "", " ", "")
	cols := map[string]int{}
	for i, h := range rows[0] {
		name := clean.Replace(h)
		if name == "매입단가(vat미포함)" {
			name = "매입단가"
		}
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}

	var out []domain.MasterRow
	for _, row := range rows[1:] {
		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		mr := domain.MasterRow{
			HaeunCode:   get("하은코드"),
			HankookCode: get("한국코드"),
			Name:        get("품명"),
			Standard:    get("규격"),
			PackQty:     1,
		}
		if mr.Name == "" && mr.HaeunCode == "" && mr.HankookCode == "" {
			continue
		}
		if mr.Name == "" {
			mr.Name = "-"
		}
		mr.UnitPrice = ParseQuantity(get("매입단가"))
		if v := ParseQuantity(get("입수")); v >= 1 {
			mr.PackQty = int(v)
		}
		out = append(out, mr)
	}
	return out, nil
}
