package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/impacta-labs/fieldpoint/constants"
	"github.com/impacta-labs/fieldpoint/internal/extract"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

// TierOutcome tags the result of one extraction tier.
type TierOutcome int

const (
	OutcomeSuccess TierOutcome = iota
	OutcomeEmpty
	OutcomeFailure
)

// TierResult is the tagged outcome of one tier attempt: either a non-empty
// field list, an empty pass, or a swallowed failure.
type TierResult struct {
	Outcome TierOutcome
	Fields  []fields.ExtractedField
	Reason  error
}

// Tier names reported through the progress observer.
const (
	TierVision   = "vision-ai"
	TierFieldSvc = "ocr-regex"
	TierRawOCR   = "raw-ocr"
)

// ProgressEvent is one step of the fallback protocol, for UI-facing
// instrumentation.
type ProgressEvent struct {
	Tier       string
	Status     string // "running" | "success" | "empty" | "failed"
	Detail     string
	FieldCount int
}

// Observer receives progress events. Nil observers are allowed.
type Observer func(ProgressEvent)

// Orchestrator drives the three-tier fallback protocol for image-origin
// input: AI vision, then OCR plus the field-extraction service, then raw OCR
// tokens. Tiers run strictly in order; a later tier is attempted only when
// the earlier one failed or came back empty, and tier failures never
// propagate.
type Orchestrator struct {
	Vision   extract.VisionExtractor
	OCR      extract.TextRecognizer
	FieldSvc extract.FieldService
	Log      *slog.Logger
	Observer Observer
}

func NewOrchestrator(vision extract.VisionExtractor, ocr extract.TextRecognizer, fieldSvc extract.FieldService, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{Vision: vision, OCR: ocr, FieldSvc: fieldSvc, Log: log}
}

// ExtractFromImage runs the fallback chain and post-processes the winning
// tier's output through dedup and the ignore filter. Finding nothing is not
// an error: the result is an empty list.
func (o *Orchestrator) ExtractFromImage(ctx context.Context, imageBase64 string) ([]fields.ExtractedField, error) {
	res := o.runVisionTier(ctx, imageBase64)

	if res.Outcome != OutcomeSuccess {
		// One OCR pass feeds both remaining tiers.
		ocrRes, ocrErr := o.recognize(ctx, imageBase64)
		res = o.runFieldServiceTier(ctx, ocrRes, ocrErr)
		if res.Outcome != OutcomeSuccess {
			res = o.runRawOCRTier(ocrRes, ocrErr)
		}
	}

	if res.Outcome != OutcomeSuccess {
		o.Log.Info("pipeline.image.no_fields")
		return []fields.ExtractedField{}, nil
	}
	out := fields.FilterIgnored(fields.Deduplicate(res.Fields))
	o.Log.Info("pipeline.image.ok", "fields", len(out))
	return out, nil
}

func (o *Orchestrator) emit(ev ProgressEvent) {
	o.Log.Info("pipeline.tier."+ev.Status,
		"tier", ev.Tier, "detail", ev.Detail, "fields", ev.FieldCount)
	if o.Observer != nil {
		o.Observer(ev)
	}
}

func (o *Orchestrator) runVisionTier(ctx context.Context, imageBase64 string) TierResult {
	o.emit(ProgressEvent{Tier: TierVision, Status: "running"})
	if o.Vision == nil {
		o.emit(ProgressEvent{Tier: TierVision, Status: "failed", Detail: "not configured"})
		return TierResult{Outcome: OutcomeFailure}
	}
	remote, err := o.Vision.ExtractFields(ctx, imageBase64)
	if err != nil {
		o.emit(ProgressEvent{Tier: TierVision, Status: "failed", Detail: err.Error()})
		return TierResult{Outcome: OutcomeFailure, Reason: err}
	}
	list := make([]fields.ExtractedField, 0, len(remote))
	for _, vf := range remote {
		name := strings.TrimSpace(vf.Label)
		if name == "" {
			name = strings.TrimSpace(vf.Name)
		}
		if name == "" {
			continue
		}
		fieldType := fields.DetermineFieldType(vf.Type, name)
		complexity := fields.DetermineComplexity(fieldType, name)
		f := fields.NewField(name, fieldType, complexity, constants.SourceGeminiAI)
		f.Required = vf.Required
		f.Description = vf.Description
		f.Category = remoteCategory(vf.Category, name, vf.Value)
		list = append(list, f)
	}
	if len(list) == 0 {
		o.emit(ProgressEvent{Tier: TierVision, Status: "empty"})
		return TierResult{Outcome: OutcomeEmpty}
	}
	list = fields.IdentifyDerivedFields(list)
	o.emit(ProgressEvent{Tier: TierVision, Status: "success", FieldCount: len(list)})
	return TierResult{Outcome: OutcomeSuccess, Fields: list}
}

func (o *Orchestrator) recognize(ctx context.Context, imageBase64 string) (extract.OCRResult, error) {
	if o.OCR == nil {
		return extract.OCRResult{}, errOCRNotConfigured
	}
	res, err := o.OCR.Recognize(ctx, imageBase64)
	if err != nil {
		o.Log.Warn("pipeline.ocr.failed", "error", err)
	}
	return res, err
}

func (o *Orchestrator) runFieldServiceTier(ctx context.Context, ocrRes extract.OCRResult, ocrErr error) TierResult {
	o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "running"})
	if ocrErr != nil {
		o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "failed", Detail: ocrErr.Error()})
		return TierResult{Outcome: OutcomeFailure, Reason: ocrErr}
	}
	text := strings.TrimSpace(ocrRes.FullText)
	if len(text) < constants.MinUsableOCRText {
		o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "empty", Detail: "ocr text too short"})
		return TierResult{Outcome: OutcomeEmpty}
	}
	if o.FieldSvc == nil {
		o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "failed", Detail: "not configured"})
		return TierResult{Outcome: OutcomeFailure}
	}
	svcRes, err := o.FieldSvc.ExtractFields(ctx, text)
	if err != nil {
		o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "failed", Detail: err.Error()})
		return TierResult{Outcome: OutcomeFailure, Reason: err}
	}

	source := strings.TrimSpace(svcRes.Source)
	if source == "" {
		source = constants.SourceOCRRegex
	}
	keys := make([]string, 0, len(svcRes.Fields))
	for k := range svcRes.Fields {
		if strings.HasSuffix(k, "_categoria") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]fields.ExtractedField, 0, len(keys))
	for _, key := range keys {
		value := svcRes.Fields[key]
		name := fields.Humanize(key)
		if name == "" {
			continue
		}
		fieldType := fields.DetermineFieldType("", name)
		complexity := fields.DetermineComplexity(fieldType, name)
		f := fields.NewField(name, fieldType, complexity, source)
		f.Description = value
		f.Category = remoteCategory(svcRes.Fields[key+"_categoria"], name, value)
		list = append(list, f)
	}
	if len(list) == 0 {
		o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "empty"})
		return TierResult{Outcome: OutcomeEmpty}
	}
	o.emit(ProgressEvent{Tier: TierFieldSvc, Status: "success", FieldCount: len(list)})
	return TierResult{Outcome: OutcomeSuccess, Fields: list}
}

// runRawOCRTier is the last resort: each OCR token becomes its own candidate.
func (o *Orchestrator) runRawOCRTier(ocrRes extract.OCRResult, ocrErr error) TierResult {
	o.emit(ProgressEvent{Tier: TierRawOCR, Status: "running"})
	if ocrErr != nil {
		o.emit(ProgressEvent{Tier: TierRawOCR, Status: "failed", Detail: ocrErr.Error()})
		return TierResult{Outcome: OutcomeFailure, Reason: ocrErr}
	}
	list := make([]fields.ExtractedField, 0, len(ocrRes.Elements))
	for _, el := range ocrRes.Elements {
		token := strings.TrimSpace(el.Text)
		if token == "" {
			continue
		}
		fieldType := fields.DetermineFieldType("", token)
		complexity := fields.DetermineComplexity(fieldType, token)
		f := fields.NewField(token, fieldType, complexity, constants.SourceCloudOCR)
		f.Category = fields.ClassifyField(token, "")
		f.Confidence = el.Confidence
		f.Position = el.BoundingBox
		list = append(list, f)
	}
	if len(list) == 0 {
		o.emit(ProgressEvent{Tier: TierRawOCR, Status: "empty"})
		return TierResult{Outcome: OutcomeEmpty}
	}
	o.emit(ProgressEvent{Tier: TierRawOCR, Status: "success", FieldCount: len(list)})
	return TierResult{Outcome: OutcomeSuccess, Fields: list}
}

// remoteCategory trusts a service-assigned category only when it is one of
// the known values; anything else goes through the local classifier.
func remoteCategory(remote, name, value string) constants.FieldCategory {
	switch constants.FieldCategory(strings.ToLower(strings.TrimSpace(remote))) {
	case constants.CategoryInput:
		return constants.CategoryInput
	case constants.CategoryOutput:
		return constants.CategoryOutput
	case constants.CategoryNeutral:
		return constants.CategoryNeutral
	case constants.CategoryDerived:
		return constants.CategoryDerived
	}
	return fields.ClassifyField(name, value)
}
