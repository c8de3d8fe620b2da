package domain

import "strings"

// Vendor identifies which upstream system a sheet came from.
type Vendor string

const (
	VendorHaeun   Vendor = "하은"
	VendorHankook Vendor = "한국"
	VendorDaiso   Vendor = "다이소"
	VendorOther   Vendor = "기타"
)

type SheetKind string

const (
	SheetStock SheetKind = "stock"
	SheetSales SheetKind = "sales"
)

// vendorFragments is evaluated in order, first match wins.
var vendorFragments = []struct {
	fragment string
	vendor   Vendor
}{
	{"하은", VendorHaeun},
	{"한국", VendorHankook},
	{"다이소", VendorDaiso},
}

func ClassifySheetVendor(sheetName string) Vendor {
	for _, f := range vendorFragments {
		if strings.Contains(sheetName, f.fragment) {
			return f.vendor
		}
	}
	return VendorOther
}

func ClassifySheetKind(sheetName string) SheetKind {
	if strings.Contains(sheetName, "판매") || strings.Contains(sheetName, "매출") {
		return SheetSales
	}
	return SheetStock
}

// NormalizedRow is the uniform shape every sheet row is reduced to before
// reconciliation.
type NormalizedRow struct {
	Vendor   Vendor    `json:"vendor"`
	RawCode  string    `json:"rawCode"`
	Quantity float64   `json:"quantity"`
	Kind     SheetKind `json:"kind"`
}

// ReconciledRow is a NormalizedRow bound to its canonical product. Rows that
// fail lookup never become one.
type ReconciledRow struct {
	NormalizedRow
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Standard  string  `json:"standard"`
	UnitPrice float64 `json:"unitPrice"`
	PackQty   int     `json:"packQty"`
}
