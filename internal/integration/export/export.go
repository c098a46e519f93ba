// Package export writes the record list as a spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// Format selects the spreadsheet encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// SheetName is the worksheet holding the records in xlsx exports.
const SheetName = "Expenses"

// Header is the first row of every export.
var Header = []string{"Date", "Category", "Amount", "Payment", "Card", "Description"}

// ParseFormat accepts xlsx or csv, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// Write encodes records in save order.
func Write(w io.Writer, format Format, records []*entity.Expense) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, records)
	case FormatCSV:
		return WriteCSV(w, records)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func row(e *entity.Expense) []string {
	return []string{
		e.Date.Format("2006-01-02"),
		e.Category,
		e.Amount.StringFixed(2),
		string(e.PaymentType),
		e.CardNickname,
		e.Description,
	}
}

// WriteCSV writes a header and one line per record.
func WriteCSV(w io.Writer, records []*entity.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range records {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook. Amounts are stored as numbers.
func WriteXLSX(w io.Writer, records []*entity.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for idx, e := range records {
		r := idx + 2
		values := row(e)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			var value any = v
			if col == 2 {
				value = e.Amount.InexactFloat64()
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}
	}

	widths := []float64{12, 16, 12, 10, 16, 32}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(SheetName, col, col, width)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
