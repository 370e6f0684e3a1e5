package http

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/render"

	"salesdash/internal/dataprocessing"
	apierrors "salesdash/internal/errors"
	"salesdash/internal/services"
)

// AnalyzeHandler handles spreadsheet analysis requests
type AnalyzeHandler struct {
	service        AnalysisService
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	maxUploadBytes int64
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(service AnalysisService, logger *slog.Logger, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:        service,
		logger:         logger.With(slog.String("handler", "analyze")),
		errorHandler:   apierrors.NewErrorHandler(logger),
		maxUploadBytes: maxUploadBytes,
	}
}

// Analyze handles POST /api/analyze: validates the multipart upload, runs the
// analysis pipeline, and responds with the chart-ready result.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingFile)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrEmptyFilename)
		return
	}
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" && ext != ".xls" {
		h.logger.WarnContext(ctx, "unsupported upload format",
			slog.String("filename", header.Filename))
		h.errorHandler.HandleError(w, r, apierrors.ErrUnsupportedFormat)
		return
	}

	opts := services.AnalyzeOptions{
		Filename:       header.Filename,
		SpecificMonths: formValueDefault(r, "specificMonths", dataprocessing.DefaultMonths),
		ProductFilter:  formValueDefault(r, "productFilter", "all"),
	}

	h.logger.InfoContext(ctx, "analysis requested",
		slog.String("filename", opts.Filename),
		slog.String("specific_months", opts.SpecificMonths),
		slog.String("product_filter", opts.ProductFilter),
		slog.Int64("size", header.Size))

	result, err := h.service.Analyze(ctx, file, opts)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// formValueDefault returns the first value of a multipart field, or the
// default when the field is absent. An explicitly empty field stays empty;
// the distinction matters for specificMonths, where "" means "no filter".
func formValueDefault(r *http.Request, key, fallback string) string {
	if r.MultipartForm == nil {
		return fallback
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return fallback
	}
	return values[0]
}
