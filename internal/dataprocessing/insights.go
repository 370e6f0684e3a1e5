package dataprocessing

import (
	"fmt"
	"strconv"

	"salesdash/pkg/contracts/domain"
)

// Fallback phrases for the no-data case. The empty-table guard in Aggregate
// makes these unreachable in practice, but the wording is part of the
// response contract and kept implemented.
const (
	noDataPhrase       = "No data available"
	noTopProductPhrase = "No top product identified"
	noTopMonthPhrase   = "No top month identified"
)

// BuildInsights derives the two narrative lists from the aggregation results:
// exactly three top-performer strings and three recommendation strings. The
// top month is the one with the highest summed sales (ties go to the
// lexicographically smallest label); the top product is the head of the
// sorted pie data.
func BuildInsights(bars []domain.ChartPoint, pie []domain.ChartSlice) domain.Insights {
	topMonth := topMonth(bars)

	topProduct := ""
	if len(pie) > 0 {
		topProduct = pie[0].Name
	}

	performers := []string{noDataPhrase, noDataPhrase, "Review sales trends for optimization"}
	if topMonth != "" {
		performers[0] = fmt.Sprintf("%s showed the highest sales volume", topMonth)
	}
	if topProduct != "" {
		share := strconv.FormatFloat(pie[0].Value, 'f', 1, 64)
		performers[1] = fmt.Sprintf("%s dominates with %s%% market share", topProduct, share)
	}

	recommendations := []string{noTopProductPhrase, "Analyze underperforming products", noTopMonthPhrase}
	if topProduct != "" {
		recommendations[0] = fmt.Sprintf("Focus marketing efforts on %s success", topProduct)
	}
	if topMonth != "" {
		recommendations[2] = fmt.Sprintf("Consider expanding successful %s strategies", topMonth)
	}

	return domain.Insights{
		TopPerformers:   performers,
		Recommendations: recommendations,
	}
}

func topMonth(bars []domain.ChartPoint) string {
	best := ""
	bestSales := 0.0
	for _, bar := range bars {
		switch {
		case best == "",
			bar.Sales > bestSales,
			bar.Sales == bestSales && bar.Month < best:
			best = bar.Month
			bestSales = bar.Sales
		}
	}
	return best
}
