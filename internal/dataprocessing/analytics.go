package dataprocessing

import (
	"math"
	"sort"

	"github.com/dustin/go-humanize"

	apierrors "salesdash/internal/errors"
	"salesdash/pkg/contracts/domain"
)

// barPalette colors the monthly bar chart. Hex codes chosen to work for both
// light and dark dashboard themes; cycled by index when there are more months
// than colors.
var barPalette = []string{
	"#3B82F6", // Blue
	"#10B981", // Green
	"#F59E0B", // Yellow
	"#EF4444", // Red
	"#8B5CF6", // Purple
	"#EC4899", // Pink
	"#06B6D4", // Cyan
	"#D97706", // Amber
	"#6366F1", // Indigo
	"#F472B6", // Rose
	"#14B8A6", // Teal
	"#F43F5E", // Rose Red
}

// piePalette colors the top-product pie chart. Five entries for at most five
// slices, so cycling never actually wraps.
var piePalette = []string{"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6"}

// topProducts caps the pie chart at the five best-selling products; the rest
// are omitted rather than folded into an "other" bucket.
const topProducts = 5

// Aggregate computes the three independent views over the filtered table and
// derives the narrative insights from them. The table must be non-empty.
func Aggregate(table Table) (*domain.AnalysisResult, error) {
	if len(table) == 0 {
		return nil, apierrors.ErrEmptyAfterFilter
	}

	bars := MonthlyBars(table)
	pie := ProductPie(table)

	return &domain.AnalysisResult{
		BarChartData: bars,
		PieChartData: pie,
		SummaryStats: Summary(table),
		Insights:     BuildInsights(bars, pie),
	}, nil
}

// MonthlyBars groups the table by month abbreviation and sums sales. Months
// appear in first-encountered order with palette colors cycled by index.
func MonthlyBars(table Table) []domain.ChartPoint {
	sums := make(map[string]float64)
	var order []string
	for _, row := range table {
		month := row.Month()
		if _, seen := sums[month]; !seen {
			order = append(order, month)
		}
		if row.Sales != nil {
			sums[month] += *row.Sales
		} else {
			sums[month] += 0
		}
	}

	bars := make([]domain.ChartPoint, len(order))
	for i, month := range order {
		bars[i] = domain.ChartPoint{
			Month: month,
			Sales: sums[month],
			Color: barPalette[i%len(barPalette)],
		}
	}
	return bars
}

// ProductPie groups the table by product, sums sales, and keeps the top five
// products as percentage shares of the filtered table's total sales. Ties are
// broken by lexicographic product name so the output is deterministic.
func ProductPie(table Table) []domain.ChartSlice {
	sums := make(map[string]float64)
	var names []string
	for _, row := range table {
		if _, seen := sums[row.Product]; !seen {
			names = append(names, row.Product)
		}
		if row.Sales != nil {
			sums[row.Product] += *row.Sales
		} else {
			sums[row.Product] += 0
		}
	}

	sort.Slice(names, func(i, j int) bool {
		if sums[names[i]] != sums[names[j]] {
			return sums[names[i]] > sums[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > topProducts {
		names = names[:topProducts]
	}

	total := totalSales(table)
	slices := make([]domain.ChartSlice, len(names))
	for i, name := range names {
		value := 0.0
		if total > 0 {
			value = math.Round(sums[name]/total*1000) / 10
		}
		slices[i] = domain.ChartSlice{
			Name:  name,
			Value: value,
			Color: piePalette[i%len(piePalette)],
		}
	}
	return slices
}

// Summary computes the three fixed headline statistics with display
// formatting: currency with 2 decimals for revenue, thousands-separated
// integer for sales, and a 2-decimal average over non-null sales values.
func Summary(table Table) []domain.SummaryStat {
	var totalRevenue float64
	for _, row := range table {
		if row.Revenue != nil {
			totalRevenue += *row.Revenue
		}
	}

	total := totalSales(table)
	count := salesCount(table)
	avg := 0.0
	if count > 0 {
		avg = total / float64(count)
	}

	return []domain.SummaryStat{
		{Label: "Total Revenue", Value: "$" + humanize.FormatFloat("#,###.##", totalRevenue), Trend: "neutral"},
		{Label: "Total Sales", Value: humanize.FormatFloat("#,###.", total), Trend: "neutral"},
		{Label: "Average Sales", Value: humanize.FormatFloat("#,###.##", avg), Trend: "neutral"},
	}
}

func totalSales(table Table) float64 {
	var total float64
	for _, row := range table {
		if row.Sales != nil {
			total += *row.Sales
		}
	}
	return total
}

// salesCount counts non-null sales values, the denominator of the average.
func salesCount(table Table) int {
	count := 0
	for _, row := range table {
		if row.Sales != nil {
			count++
		}
	}
	return count
}
