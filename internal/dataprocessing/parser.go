package dataprocessing

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	apierrors "salesdash/internal/errors"
)

// RawTable is the format-only decode of a workbook: column names inferred from
// the first non-blank row of the first sheet, and one string record per
// remaining non-blank row. No schema is assumed at this stage.
type RawTable struct {
	Columns []string
	Records [][]string
}

// Parse decodes spreadsheet content into a RawTable. Cell values are read raw
// (unformatted), so dates arrive as Excel serial numbers unless the cell holds
// text. Content that cannot be decoded as a workbook yields a DecodeFailure.
func Parse(content io.Reader) (*RawTable, error) {
	f, err := excelize.OpenReader(content)
	if err != nil {
		return nil, apierrors.DecodeFailure(err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apierrors.DecodeFailure(err)
	}

	table := &RawTable{}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if table.Columns == nil {
			table.Columns = trimCells(row)
			continue
		}
		table.Records = append(table.Records, padRow(trimCells(row), len(table.Columns)))
	}

	return table, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

// padRow extends short records with empty cells so every record can be
// indexed by column position.
func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
