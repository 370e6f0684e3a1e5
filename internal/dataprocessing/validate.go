package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apierrors "salesdash/internal/errors"
)

// Required column names. The whole upload is rejected before any aggregation
// runs when the schema does not hold; there is no row-level rejection.
const (
	ColumnDate    = "Date"
	ColumnSales   = "Sales"
	ColumnRevenue = "Revenue"
	ColumnProduct = "Product"
)

// Row is one validated sales record. Sales and Revenue are nil when the
// source cell was blank; blank cells are excluded from sums and counts.
type Row struct {
	Date    time.Time
	Sales   *float64
	Revenue *float64
	Product string
}

// Table is an ordered sequence of rows sharing one schema.
type Table []Row

// Month returns the row's 3-letter English month abbreviation, the grouping
// and filter key used throughout the pipeline.
func (r Row) Month() string {
	return r.Date.Format("Jan")
}

// dateLayouts are tried in order for text date cells. Serial-number dates are
// handled separately via excelize.ExcelDateToTime.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2-Jan-06",
	time.RFC3339,
}

// ValidateSchema checks a raw table against the required schema and converts
// it into typed rows. Checks run in order of fundamentality: missing columns
// first, then numeric column types, then date parsing, so the most basic
// problem is the one reported.
func ValidateSchema(raw *RawTable) (Table, error) {
	index := columnIndex(raw.Columns)

	var missing []string
	for _, col := range []string{ColumnDate, ColumnSales, ColumnRevenue, ColumnProduct} {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apierrors.MissingColumns(missing)
	}

	sales, err := numericColumn(raw, index[ColumnSales], ColumnSales)
	if err != nil {
		return nil, err
	}
	revenue, err := numericColumn(raw, index[ColumnRevenue], ColumnRevenue)
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(raw.Records))
	for i, record := range raw.Records {
		date, err := parseDate(record[index[ColumnDate]])
		if err != nil {
			return nil, apierrors.InvalidDate(fmt.Errorf("row %d: %w", i+2, err))
		}
		table = append(table, Row{
			Date:    date,
			Sales:   sales[i],
			Revenue: revenue[i],
			Product: record[index[ColumnProduct]],
		})
	}

	return table, nil
}

// columnIndex maps column names to their first position.
func columnIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	return index
}

// numericColumn parses every cell of a column as a number. A single
// non-numeric cell invalidates the whole upload; blank cells become nil.
func numericColumn(raw *RawTable, col int, name string) ([]*float64, error) {
	values := make([]*float64, len(raw.Records))
	for i, record := range raw.Records {
		cell := record[col]
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
		if err != nil {
			return nil, apierrors.NonNumericColumn(name, cell)
		}
		values[i] = &v
	}
	return values, nil
}

// parseDate normalizes a raw cell into a calendar date. Excel stores dates as
// serial numbers, so a numeric cell is converted through the Excel epoch;
// text cells are tried against common layouts.
func parseDate(cell string) (time.Time, error) {
	if cell == "" {
		return time.Time{}, fmt.Errorf("empty value in %s column", ColumnDate)
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		date, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid Excel date serial %q: %w", cell, err)
		}
		return date, nil
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, cell); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date value %q", cell)
}
