package dataprocessing

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook builds an in-memory xlsx with the given header and data rows.
func workbook(t *testing.T, header []string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for j, col := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, col))
	}
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

// salesHeader is the canonical schema used by most tests.
var salesHeader = []string{"Date", "Sales", "Revenue", "Product"}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

// salesTable converts literal rows into a validated Table without going
// through a workbook, for stages downstream of the parser.
func salesTable(t *testing.T, rows ...[4]interface{}) Table {
	t.Helper()

	table := make(Table, 0, len(rows))
	for _, r := range rows {
		row := Row{
			Date:    date(t, r[0].(string)),
			Product: r[3].(string),
		}
		if r[1] != nil {
			v := toFloat(t, r[1])
			row.Sales = &v
		}
		if r[2] != nil {
			v := toFloat(t, r[2])
			row.Revenue = &v
		}
		table = append(table, row)
	}
	return table
}

func toFloat(t *testing.T, v interface{}) float64 {
	t.Helper()
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	t.Fatalf("unsupported numeric literal %T", v)
	return 0
}
