package fields

import (
	"fmt"

	"github.com/impacta-labs/fieldpoint/constants"
)

// eiLikeTypes score on the EI weight row; textarea and select score on the
// EO row. Unrecognized types fall back to a flat 4.
var eiLikeTypes = map[constants.FieldType]struct{}{
	constants.TypeText:     {},
	constants.TypeEmail:    {},
	constants.TypeNumber:   {},
	constants.TypeDate:     {},
	constants.TypeCheckbox: {},
	constants.TypeRadio:    {},
	constants.TypeFile:     {},
	constants.TypeURL:      {},
}

var eoLikeTypes = map[constants.FieldType]struct{}{
	constants.TypeTextarea: {},
	constants.TypeSelect:   {},
}

type weightRow struct {
	low, average, high int
}

func (w weightRow) at(c constants.Complexity) int {
	switch c {
	case constants.ComplexityLow:
		return w.low
	case constants.ComplexityHigh:
		return w.high
	default:
		return w.average
	}
}

var (
	eiWeights  = weightRow{3, 4, 6}
	eoWeights  = weightRow{4, 5, 7}
	eqWeights  = weightRow{3, 4, 6}
	ilfWeights = weightRow{7, 10, 15}
	eifWeights = weightRow{5, 7, 10}
)

// bucketWeights are the per-bucket multipliers used by the breakdown report.
var bucketWeights = map[constants.FPBucket]weightRow{
	constants.BucketEI:  eiWeights,
	constants.BucketEO:  eoWeights,
	constants.BucketEQ:  eqWeights,
	constants.BucketILF: ilfWeights,
	constants.BucketEIF: eifWeights,
}

// CalculateFunctionPoints maps (type, complexity) to the field-level weight.
// This is the only place an fpValue may come from.
func CalculateFunctionPoints(fieldType constants.FieldType, complexity constants.Complexity) int {
	if _, ok := eiLikeTypes[fieldType]; ok {
		return eiWeights.at(complexity)
	}
	if _, ok := eoLikeTypes[fieldType]; ok {
		return eoWeights.at(complexity)
	}
	return 4
}

// BucketBreakdown is the per-category slice of the IFPUG report.
type BucketBreakdown struct {
	Low     int `json:"low"`
	Average int `json:"average"`
	High    int `json:"high"`
	Total   int `json:"total"`
	FP      int `json:"fp"`
}

// FunctionPointAnalysis is the aggregate report over a field list. It holds a
// reference to the caller's fields, not a copy.
type FunctionPointAnalysis struct {
	TotalFields         int                                     `json:"totalFields"`
	TotalFunctionPoints int                                     `json:"totalFunctionPoints"`
	Fields              []ExtractedField                        `json:"fields"`
	DetailedBreakdown   map[constants.FPBucket]*BucketBreakdown `json:"detailedBreakdown"`
}

// bucketFor places one field into an IFPUG category. Precedence: entrada or
// an EI-like type means EI; otherwise saida or textarea means EO; everything
// else (select included) lands in EQ. ILF/EIF need dataset-level input the
// pipeline does not compute and stay empty.
func bucketFor(f ExtractedField) constants.FPBucket {
	if f.Category == constants.CategoryInput {
		return constants.BucketEI
	}
	if _, ok := eiLikeTypes[f.Type]; ok {
		return constants.BucketEI
	}
	if f.Category == constants.CategoryOutput || f.Type == constants.TypeTextarea {
		return constants.BucketEO
	}
	return constants.BucketEQ
}

// Analyze aggregates a classified field list into the five-bucket breakdown.
// It returns an error only for programmer mistakes: a field whose FPValue was
// set independently of the scoring table violates the derivation invariant.
func Analyze(list []ExtractedField) (FunctionPointAnalysis, error) {
	breakdown := make(map[constants.FPBucket]*BucketBreakdown, len(constants.FPBuckets))
	for _, b := range constants.FPBuckets {
		breakdown[b] = &BucketBreakdown{}
	}

	for _, f := range list {
		if f.FPValue != CalculateFunctionPoints(f.Type, f.Complexity) {
			return FunctionPointAnalysis{}, fmt.Errorf(
				"field %q: fpValue %d is not derived from (%s, %s)",
				f.Name, f.FPValue, f.Type, f.Complexity)
		}
		bucket := breakdown[bucketFor(f)]
		weights := bucketWeights[bucketFor(f)]
		switch f.Complexity {
		case constants.ComplexityLow:
			bucket.Low++
			bucket.FP += weights.low
		case constants.ComplexityHigh:
			bucket.High++
			bucket.FP += weights.high
		default:
			bucket.Average++
			bucket.FP += weights.average
		}
		bucket.Total++
	}

	total := 0
	for _, b := range breakdown {
		total += b.FP
	}
	return FunctionPointAnalysis{
		TotalFields:         len(list),
		TotalFunctionPoints: total,
		Fields:              list,
		DetailedBreakdown:   breakdown,
	}, nil
}
