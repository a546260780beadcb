package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/fields"
	"github.com/impacta-labs/fieldpoint/internal/miner"
)

var errOCRNotConfigured = errors.New("ocr recognizer not configured")

// Service exposes the pipeline's public entry points. Structured extraction
// and analysis are pure; only the image path touches the network.
type Service struct {
	Log  *slog.Logger
	Orch *Orchestrator
}

func NewService(orch *Orchestrator, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{Log: log, Orch: orch}
}

// ExtractFromStructuredInput runs the JSON, HTML, and free-text miners over
// the same raw input, deduplicates the concatenated candidates by
// case-insensitive name (first seen wins), and decorates each survivor with
// its resolved type, complexity, category, and function-point value. Finding
// nothing returns an empty list, never an error.
func (s *Service) ExtractFromStructuredInput(raw string) []fields.ExtractedField {
	candidates := miner.MineAll(raw)
	list := make([]fields.ExtractedField, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		list = append(list, buildField(c))
	}
	out := fields.Deduplicate(list)
	s.Log.Info("pipeline.structured.ok",
		"input_len", len(raw), "candidates", len(candidates), "fields", len(out))
	return out
}

// ExtractFromImage runs the three-tier fallback orchestrator.
func (s *Service) ExtractFromImage(ctx context.Context, imageBase64 string) ([]fields.ExtractedField, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "image payload is empty")
	}
	return s.Orch.ExtractFromImage(ctx, imageBase64)
}

// Analyze aggregates an already-extracted field list. Pure, no I/O.
func (s *Service) Analyze(list []fields.ExtractedField) (fields.FunctionPointAnalysis, error) {
	return fields.Analyze(list)
}

// buildField resolves one surviving candidate into a scored field.
func buildField(c miner.Candidate) fields.ExtractedField {
	fieldType := fields.DetermineFieldType(c.TypeHint, c.Name)
	complexity := c.ComplexityOverride
	if complexity == "" {
		key := c.ComplexityKey
		if key == "" {
			key = c.Name
		}
		complexity = fields.DetermineComplexity(fieldType, key)
	}
	f := fields.NewField(c.Name, fieldType, complexity, c.Source)
	f.Required = c.Required
	f.Description = c.Description
	f.Category = fields.ClassifyField(c.Name, c.Value)
	return f
}
