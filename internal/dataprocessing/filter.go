package dataprocessing

import (
	"strings"

	apierrors "salesdash/internal/errors"
)

// DefaultMonths is applied when the caller omits the specificMonths field
// entirely. An explicit empty string means "no filter, use all rows".
const DefaultMonths = "Jan"

// ParseMonthList splits a comma-separated list of month abbreviations,
// trimming whitespace around each entry and dropping empty ones.
func ParseMonthList(list string) []string {
	var months []string
	for _, token := range strings.Split(list, ",") {
		if token = strings.TrimSpace(token); token != "" {
			months = append(months, token)
		}
	}
	return months
}

// FilterByMonths returns a new table holding only the rows whose date falls
// in one of the given months. An empty list passes all rows through.
// Unrecognized month tokens simply match nothing; if no rows survive, the
// error names the months the caller asked for.
func FilterByMonths(table Table, list string) (Table, error) {
	months := ParseMonthList(list)
	if len(months) == 0 {
		out := make(Table, len(table))
		copy(out, table)
		return out, nil
	}

	wanted := make(map[string]struct{}, len(months))
	for _, m := range months {
		wanted[m] = struct{}{}
	}

	out := make(Table, 0, len(table))
	for _, row := range table {
		if _, ok := wanted[row.Month()]; ok {
			out = append(out, row)
		}
	}

	if len(out) == 0 {
		return nil, apierrors.NoDataForMonths(list)
	}
	return out, nil
}

// FilterByProduct is accepted for interface compatibility with the dashboard
// client but intentionally applies no filtering in this version; it returns
// the table unchanged regardless of the filter value. Future versions may
// narrow the table to the named product here.
func FilterByProduct(table Table, productFilter string) Table {
	return table
}
