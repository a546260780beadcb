package constants

// Complexity is the IFPUG complexity tier of a field.
type Complexity string

const (
	ComplexityLow     Complexity = "Low"
	ComplexityAverage Complexity = "Average"
	ComplexityHigh    Complexity = "High"
)

// FieldCategory says how a field participates in the transaction:
// user-entered, system-produced, neither, or computed from other fields.
// Values are kept in Portuguese for compatibility with stored analyses.
type FieldCategory string

const (
	CategoryInput   FieldCategory = "entrada"
	CategoryOutput  FieldCategory = "saida"
	CategoryNeutral FieldCategory = "neutro"
	CategoryDerived FieldCategory = "derivado"
)

// FPBucket is one of the five IFPUG element categories.
type FPBucket string

const (
	BucketEI  FPBucket = "EI"
	BucketEO  FPBucket = "EO"
	BucketEQ  FPBucket = "EQ"
	BucketILF FPBucket = "ILF"
	BucketEIF FPBucket = "EIF"
)

// FPBuckets lists the buckets in report order. ILF/EIF are never populated by
// field-level classification but must stay present in every breakdown.
var FPBuckets = []FPBucket{BucketEI, BucketEO, BucketEQ, BucketILF, BucketEIF}
