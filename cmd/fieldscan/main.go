// fieldscan runs the structural extraction pipeline over a file (or stdin)
// and prints the field inventory plus the function-point analysis as JSON.
package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/impacta-labs/fieldpoint/internal/fields"
	"github.com/impacta-labs/fieldpoint/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	var raw []byte
	var err error
	switch len(os.Args) {
	case 1:
		raw, err = io.ReadAll(os.Stdin)
	case 2:
		raw, err = os.ReadFile(os.Args[1])
	default:
		logger.Error("usage", "cmd", "fieldscan [file]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	svc := pipeline.NewService(pipeline.NewOrchestrator(nil, nil, nil, logger), logger)
	list := svc.ExtractFromStructuredInput(string(raw))
	analysis, err := svc.Analyze(list)
	if err != nil {
		logger.Error("analyze", "error", err)
		os.Exit(1)
	}

	out := struct {
		Fields   []fields.ExtractedField      `json:"fields"`
		Analysis fields.FunctionPointAnalysis `json:"analysis"`
	}{Fields: list, Analysis: analysis}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
