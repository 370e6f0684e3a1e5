package http

import (
	"context"
	"io"

	"salesdash/internal/services"
	"salesdash/pkg/contracts/domain"
)

// AnalysisService defines the service interface the analyze handler depends
// on, kept narrow so tests can substitute a mock.
type AnalysisService interface {
	Analyze(ctx context.Context, content io.Reader, opts services.AnalyzeOptions) (*domain.AnalysisResult, error)
}
