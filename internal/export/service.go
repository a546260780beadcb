// Package export renders a function-point analysis as an XLSX workbook.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/impacta-labs/fieldpoint/constants"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

// Service produces XLSX bytes for analysis exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportAnalysisXLSX returns a workbook with a Summary sheet (totals and the
// five-bucket breakdown) and a Fields sheet (one row per extracted field).
func (s *Service) ExportAnalysisXLSX(analysis fields.FunctionPointAnalysis) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const summarySheet = "Summary"
	const fieldsSheet = "Fields"

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(fieldsSheet); err != nil {
		return nil, err
	}

	// Summary: totals then one row per IFPUG bucket.
	setRow(f, summarySheet, 1, []any{"Total Fields", analysis.TotalFields})
	setRow(f, summarySheet, 2, []any{"Total Function Points", analysis.TotalFunctionPoints})
	setRow(f, summarySheet, 4, []any{"Category", "Low", "Average", "High", "Total", "FP"})
	row := 5
	for _, bucket := range constants.FPBuckets {
		b := analysis.DetailedBreakdown[bucket]
		if b == nil {
			b = &fields.BucketBreakdown{}
		}
		setRow(f, summarySheet, row, []any{string(bucket), b.Low, b.Average, b.High, b.Total, b.FP})
		row++
	}

	// Fields: full inventory.
	setRow(f, fieldsSheet, 1, []any{
		"Name", "Type", "Complexity", "Category", "Required", "FP", "Source", "Description",
	})
	for i, field := range analysis.Fields {
		setRow(f, fieldsSheet, i+2, []any{
			field.Name,
			string(field.Type),
			string(field.Complexity),
			string(field.Category),
			field.Required,
			field.FPValue,
			field.Source,
			field.Description,
		})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.analysis.ok",
		"fields", analysis.TotalFields,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
