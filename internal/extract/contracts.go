// Package extract declares the boundary contracts the image orchestrator
// consumes. The concrete clients live in internal/vision and internal/ocr;
// the pipeline depends only on these interfaces.
package extract

import (
	"context"

	"github.com/impacta-labs/fieldpoint/internal/fields"
)

// VisionField is one item of the vision-AI service's field array. Type,
// complexity, and function points are always recomputed locally; only the
// descriptive attributes are trusted.
type VisionField struct {
	Label       string `json:"label"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Required    bool   `json:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// VisionExtractor is tier 1: image -> structured field list.
type VisionExtractor interface {
	ExtractFields(ctx context.Context, imageBase64 string) ([]VisionField, error)
}

// OCRElement is one recognized token with the engine's own confidence and
// bounding box.
type OCRElement struct {
	Text        string
	Confidence  float64
	BoundingBox *fields.Position
}

// OCRResult is a full OCR pass over one image.
type OCRResult struct {
	FullText string
	Elements []OCRElement
}

// TextRecognizer is the OCR engine boundary, shared by tiers 2 and 3.
type TextRecognizer interface {
	Recognize(ctx context.Context, imageBase64 string) (OCRResult, error)
}

// FieldServiceResult is the OCR+regex field-extraction service's reply: a
// flat key/value map where a "<key>_categoria" sibling may carry the field's
// category, plus the service's own provenance tag.
type FieldServiceResult struct {
	Fields map[string]string
	Source string
}

// FieldService is tier 2: plain text -> field map.
type FieldService interface {
	ExtractFields(ctx context.Context, text string) (FieldServiceResult, error)
}
