package domain

// ChartPoint represents one bar of the monthly sales chart.
type ChartPoint struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
	Color string  `json:"color"`
}

// ChartSlice represents one slice of the top-product pie chart.
// Value is the product's share of total sales as a percentage (0-100,
// rounded to one decimal place).
type ChartSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// SummaryStat represents a single headline statistic. Value carries the
// display-formatted string; Trend is always "neutral" in this version.
type SummaryStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

// Insights holds the narrative lists derived from the aggregation results.
// Both lists always contain exactly three entries.
type Insights struct {
	TopPerformers   []string `json:"topPerformers"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisResult is the success response body of POST /api/analyze.
type AnalysisResult struct {
	BarChartData []ChartPoint  `json:"barChartData"`
	PieChartData []ChartSlice  `json:"pieChartData"`
	SummaryStats []SummaryStat `json:"summaryStats"`
	Insights     Insights      `json:"insights"`
}
