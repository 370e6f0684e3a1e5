package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apierrors "salesdash/internal/errors"
)

func newService() *AnalysisService {
	return NewAnalysisService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func salesWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []string{"Date", "Sales", "Revenue", "Product"}
	for j, col := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, col))
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestAnalysisService_Analyze(t *testing.T) {
	buf := salesWorkbook(t, [][]interface{}{
		{time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 10, 100, "A"},
		{time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), 20, 200, "B"},
		{time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 5, 50, "A"},
	})

	result, err := newService().Analyze(context.Background(), buf, AnalyzeOptions{
		Filename:       "sales.xlsx",
		SpecificMonths: "Jan",
		ProductFilter:  "all",
	})
	require.NoError(t, err)

	require.Len(t, result.BarChartData, 1)
	assert.Equal(t, "Jan", result.BarChartData[0].Month)
	assert.Equal(t, 30.0, result.BarChartData[0].Sales)

	require.Len(t, result.PieChartData, 2)
	assert.Equal(t, "B", result.PieChartData[0].Name)
	assert.Equal(t, 66.7, result.PieChartData[0].Value)

	assert.Equal(t, "$300.00", result.SummaryStats[0].Value)
	assert.Contains(t, result.Insights.TopPerformers[0], "Jan")
}

func TestAnalysisService_Analyze_StageErrorsPropagate(t *testing.T) {
	tests := []struct {
		name     string
		content  func(t *testing.T) io.Reader
		months   string
		wantCode string
	}{
		{
			name:     "decode failure",
			content:  func(t *testing.T) io.Reader { return bytes.NewReader([]byte("garbage")) },
			months:   "Jan",
			wantCode: apierrors.CodeDecodeFailure,
		},
		{
			name: "schema failure",
			content: func(t *testing.T) io.Reader {
				f := excelize.NewFile()
				require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "Notes"))
				buf, err := f.WriteToBuffer()
				require.NoError(t, err)
				return buf
			},
			months:   "Jan",
			wantCode: apierrors.CodeMissingColumns,
		},
		{
			name: "no data for months",
			content: func(t *testing.T) io.Reader {
				return salesWorkbook(t, [][]interface{}{
					{time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 10, 100, "A"},
				})
			},
			months:   "Dec",
			wantCode: apierrors.CodeNoDataForMonths,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService().Analyze(context.Background(), tt.content(t), AnalyzeOptions{
				Filename:       "sales.xlsx",
				SpecificMonths: tt.months,
				ProductFilter:  "all",
			})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apierrors.AsAPIError(err).ErrorCode)
		})
	}
}
