package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySheetVendor(t *testing.T) {
	assert.Equal(t, VendorHaeun, ClassifySheetVendor("하은 재고"))
	assert.Equal(t, VendorHankook, ClassifySheetVendor("한국 판매현황"))
	assert.Equal(t, VendorDaiso, ClassifySheetVendor("다이소 납품"))
	assert.Equal(t, VendorOther, ClassifySheetVendor("Sheet1"))

	// ordered match: the first fragment in the list wins
	assert.Equal(t, VendorHaeun, ClassifySheetVendor("하은한국 통합"))
}

func TestClassifySheetKind(t *testing.T) {
	assert.Equal(t, SheetSales, ClassifySheetKind("하은 판매"))
	assert.Equal(t, SheetSales, ClassifySheetKind("12월 매출"))
	assert.Equal(t, SheetStock, ClassifySheetKind("하은 재고"))
	assert.Equal(t, SheetStock, ClassifySheetKind("기타"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "123", NormalizeCode("123"))
	assert.Equal(t, "123", NormalizeCode("123.0"))
	assert.Equal(t, "123", NormalizeCode(" 123 "))
	assert.Equal(t, "123", NormalizeCode(" 123.0 "))
	assert.Equal(t, "", NormalizeCode("nan"))
	assert.Equal(t, "", NormalizeCode("  "))
	assert.Equal(t, "A-10", NormalizeCode("A-10"))
}
