package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// Error codes for the analysis pipeline. Everything except
// CodeUnexpectedFailure is a user input error and maps to HTTP 400.
const (
	CodeMissingFile       = "MISSING_FILE"
	CodeEmptyFilename     = "EMPTY_FILENAME"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeDecodeFailure     = "DECODE_FAILURE"
	CodeMissingColumns    = "MISSING_COLUMNS"
	CodeNonNumericColumn  = "NON_NUMERIC_COLUMN"
	CodeInvalidDate       = "INVALID_DATE"
	CodeNoDataForMonths   = "NO_DATA_FOR_MONTHS"
	CodeEmptyAfterFilter  = "EMPTY_AFTER_FILTER"
	CodeUnexpectedFailure = "UNEXPECTED_FAILURE"
)

// APIError represents a structured API error. The wire format is the flat
// {"error": message} object the dashboard frontend expects; StatusCode and
// ErrorCode stay server-side for logging and tests.
type APIError struct {
	StatusCode int    `json:"-"`
	ErrorCode  string `json:"-"`
	Message    string `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Input validation errors (4.1)

// ErrMissingFile is returned when the multipart body has no file field.
var ErrMissingFile = New(http.StatusBadRequest, CodeMissingFile, "No file part in request")

// ErrEmptyFilename is returned when the uploaded file has no name.
var ErrEmptyFilename = New(http.StatusBadRequest, CodeEmptyFilename, "No file selected")

// ErrUnsupportedFormat is returned for anything but the two Excel extensions.
var ErrUnsupportedFormat = New(http.StatusBadRequest, CodeUnsupportedFormat,
	"Invalid file format. Please upload an Excel file (.xlsx or .xls)")

// DecodeFailure wraps a spreadsheet decode error.
func DecodeFailure(err error) *APIError {
	return New(http.StatusBadRequest, CodeDecodeFailure,
		fmt.Sprintf("Failed to read spreadsheet: %v", err))
}

// MissingColumns reports every absent required column, not just the first.
func MissingColumns(columns []string) *APIError {
	return New(http.StatusBadRequest, CodeMissingColumns,
		fmt.Sprintf("Missing required columns: %s", strings.Join(columns, ", ")))
}

// NonNumericColumn reports the first non-numeric cell found in a numeric column.
func NonNumericColumn(column, cell string) *APIError {
	return New(http.StatusBadRequest, CodeNonNumericColumn,
		fmt.Sprintf("Sales and Revenue columns must contain numeric values (column %q has value %q)", column, cell))
}

// InvalidDate carries the underlying date parse error.
func InvalidDate(err error) *APIError {
	return New(http.StatusBadRequest, CodeInvalidDate,
		fmt.Sprintf("Invalid date format in Date column: %v", err))
}

// NoDataForMonths names the months the caller asked for.
func NoDataForMonths(months string) *APIError {
	return New(http.StatusBadRequest, CodeNoDataForMonths,
		fmt.Sprintf("No data found for specified months: %s", months))
}

// ErrEmptyAfterFilter is returned when the filtered table has no rows left.
var ErrEmptyAfterFilter = New(http.StatusBadRequest, CodeEmptyAfterFilter,
	"No data available after applying filters")

// UnexpectedFailure wraps anything unanticipated; the message is exposed to
// the caller per the error contract.
func UnexpectedFailure(err error) *APIError {
	return New(http.StatusInternalServerError, CodeUnexpectedFailure,
		fmt.Sprintf("Failed to process file: %v", err))
}
