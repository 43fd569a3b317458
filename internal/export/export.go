// Package export serializes filtered payment lists for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"paydash/internal/models"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var header = []string{
	"Payment Code", "Paid At", "Merchant Code", "Merchant Name",
	"Amount", "Currency", "Pay Type", "Status",
}

// Labels resolves status and pay-type codes to their human labels.
// Unknown codes fall back to the raw code.
type Labels struct {
	statuses map[string]string
	payTypes map[string]string
}

func NewLabels(statuses []models.StatusCode, payTypes []models.PayTypeCode) Labels {
	l := Labels{
		statuses: make(map[string]string, len(statuses)),
		payTypes: make(map[string]string, len(payTypes)),
	}
	for _, s := range statuses {
		l.statuses[s.Code] = s.Description
	}
	for _, t := range payTypes {
		l.payTypes[t.Type] = t.Description
	}
	return l
}

func (l Labels) Status(code string) string {
	if label, ok := l.statuses[code]; ok {
		return label
	}
	return code
}

func (l Labels) PayType(code string) string {
	if label, ok := l.payTypes[code]; ok {
		return label
	}
	return code
}

func row(p models.Payment, labels Labels) []string {
	return []string{
		p.PaymentCode,
		p.PaymentAt,
		p.MchtCode,
		p.MchtName,
		p.Amount,
		p.Currency,
		labels.PayType(p.PayType),
		labels.Status(p.Status),
	}
}

// PaymentsCSV renders payments as UTF-8 CSV with a BOM so spreadsheet
// tools pick up the encoding.
func PaymentsCSV(payments []models.Payment, labels Labels) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range payments {
		if err := w.Write(row(p, labels)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PaymentsXLSX renders payments as a single-sheet workbook.
func PaymentsXLSX(payments []models.Payment, labels Labels) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "payments"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(sheet, cell, title)
	}

	for i, p := range payments {
		cells := row(p, labels)
		for col, val := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			// Keep the amount numeric in the sheet when it parses.
			if col == 4 {
				if v, perr := strconv.ParseFloat(p.Amount, 64); perr == nil {
					_ = f.SetCellValue(sheet, cell, v)
					continue
				}
			}
			_ = f.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
