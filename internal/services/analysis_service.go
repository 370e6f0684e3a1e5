package services

import (
	"context"
	"io"
	"log/slog"

	"salesdash/internal/dataprocessing"
	"salesdash/pkg/contracts/domain"
)

// AnalyzeOptions carries the caller-supplied parameters of one analysis
// request. ProductFilter is accepted but currently inert (see
// dataprocessing.FilterByProduct).
type AnalyzeOptions struct {
	Filename       string
	SpecificMonths string
	ProductFilter  string
}

// AnalysisService runs the sales analysis pipeline over uploaded spreadsheet
// content. Each call is self-contained; the service holds no per-request
// state and is safe for concurrent use.
type AnalysisService struct {
	logger *slog.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		logger: logger.With(slog.String("service", "analysis")),
	}
}

// Analyze decodes, validates, filters, and aggregates the uploaded content.
// The first failing stage short-circuits the rest; every error is terminal
// for the request.
func (s *AnalysisService) Analyze(ctx context.Context, content io.Reader, opts AnalyzeOptions) (*domain.AnalysisResult, error) {
	logger := s.logger.With(
		slog.String("filename", opts.Filename),
		slog.String("specific_months", opts.SpecificMonths),
		slog.String("product_filter", opts.ProductFilter),
	)

	raw, err := dataprocessing.Parse(content)
	if err != nil {
		logger.ErrorContext(ctx, "spreadsheet decode failed", slog.String("error", err.Error()))
		return nil, err
	}
	logger.InfoContext(ctx, "spreadsheet decoded",
		slog.Any("columns", raw.Columns),
		slog.Int("records", len(raw.Records)))

	table, err := dataprocessing.ValidateSchema(raw)
	if err != nil {
		logger.ErrorContext(ctx, "schema validation failed",
			slog.Any("columns", raw.Columns),
			slog.String("error", err.Error()))
		return nil, err
	}

	filtered, err := dataprocessing.FilterByMonths(table, opts.SpecificMonths)
	if err != nil {
		logger.ErrorContext(ctx, "month filter left no rows", slog.String("error", err.Error()))
		return nil, err
	}
	filtered = dataprocessing.FilterByProduct(filtered, opts.ProductFilter)

	result, err := dataprocessing.Aggregate(filtered)
	if err != nil {
		logger.ErrorContext(ctx, "aggregation failed", slog.String("error", err.Error()))
		return nil, err
	}

	logger.InfoContext(ctx, "analysis completed",
		slog.Int("rows_analyzed", len(filtered)),
		slog.Int("months", len(result.BarChartData)),
		slog.Int("products", len(result.PieChartData)))

	return result, nil
}
