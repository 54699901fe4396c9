// Package export writes and reads the product catalog as an Excel workbook.
package export

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/kalkulator/internal/catalog"
)

const SheetName = "Produkte"

// ErrNoSheet is returned by ReadCatalog when the workbook has no product sheet.
var ErrNoSheet = errors.New("workbook has no " + SheetName + " sheet")

var headers = []string{"Behandlung", "Produkt", "Typ", "Länge", "Artikel-ID", "Preis", "Info"}

// WriteCatalog writes products to w as an xlsx workbook, sorted by the
// selection attributes.
func WriteCatalog(w io.Writer, products []catalog.Product) error {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, compareProducts)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	priceStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("create price style: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastHeader := cellName(len(headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, p := range sorted {
		row := []any{p.Behandlung, p.Produkt, p.Typ, p.Laenge, p.ArtikelID, p.Preis, p.Info}
		if err := f.SetSheetRow(SheetName, cellName(1, i+2), &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if len(sorted) > 0 {
		if err := f.SetCellStyle(SheetName, cellName(6, 2), cellName(6, len(sorted)+1), priceStyle); err != nil {
			return fmt.Errorf("style prices: %w", err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "E", 18)
	_ = f.SetColWidth(SheetName, "G", "G", 32)
	if err := f.AutoFilter(SheetName, "A1:"+lastHeader, nil); err != nil {
		return fmt.Errorf("set auto filter: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// ReadCatalog reads rows written by WriteCatalog and reports how many data
// rows were skipped because produkt is missing or preis is unreadable. Blank
// rows are ignored. preis accepts a decimal comma. Products are returned
// without ID and are not validated.
func ReadCatalog(r io.Reader) ([]catalog.Product, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(SheetName); err != nil || idx < 0 {
		return nil, 0, ErrNoSheet
	}

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, 0, fmt.Errorf("read rows: %w", err)
	}

	products := []catalog.Product{}
	skipped := 0
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		col := func(n int) string {
			if n < len(row) {
				return strings.TrimSpace(row[n])
			}
			return ""
		}
		preis, err := catalog.ParsePrice(col(5))
		if col(1) == "" || err != nil {
			skipped++
			continue
		}
		products = append(products, catalog.Product{
			Behandlung: col(0),
			Produkt:    col(1),
			Typ:        col(2),
			Laenge:     col(3),
			ArtikelID:  col(4),
			Preis:      preis,
			Info:       col(6),
		})
	}
	return products, skipped, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func compareProducts(a, b catalog.Product) int {
	for _, attr := range catalog.Attributes {
		if c := catalog.CompareGerman(a.Value(attr), b.Value(attr)); c != 0 {
			return c
		}
	}
	return 0
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
