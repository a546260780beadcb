package constants

// Provenance tags recorded on each extracted field. Miners use the structural
// tags; orchestrator tiers use the external-service names.
const (
	SourceJSON      = "JSON"
	SourceJSONArray = "JSON Array"
	SourceHTML      = "HTML"
	SourceHTMLLabel = "HTML Label"
	SourceText      = "Text"
	SourceTextKV    = "Text KeyValue"
	SourceGeminiAI  = "Gemini AI"
	SourceCloudOCR  = "Google Cloud Vision"
	SourceOCRRegex  = "OCR+Regex"
)

// MinUsableOCRText is the minimum number of characters an OCR pass must
// recover before the text is handed to the field-extraction service.
const MinUsableOCRText = 10
