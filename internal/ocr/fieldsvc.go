package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/extract"
)

// FieldServiceClient calls the OCR+regex field-extraction service: plain
// text in, a flat campos map out.
type FieldServiceClient struct {
	endpoint string
	hc       *http.Client
	log      *slog.Logger
}

func NewFieldServiceClient(endpoint string, timeout time.Duration, log *slog.Logger) *FieldServiceClient {
	if log == nil {
		log = slog.Default()
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &FieldServiceClient{endpoint: endpoint, hc: &http.Client{Timeout: timeout}, log: log}
}

type fieldSvcEnvelope struct {
	Status string         `json:"status"`
	Campos map[string]any `json:"campos"`
	Fonte  string         `json:"fonte"`
}

// ExtractFields submits recovered text and normalizes the campos map to
// strings. Non-success status is an error so the orchestrator falls through.
func (c *FieldServiceClient) ExtractFields(ctx context.Context, text string) (extract.FieldServiceResult, error) {
	raw, _, err := common.SendJSON(ctx, c.hc, c.endpoint, map[string]any{"texto": text}, nil, c.log)
	if err != nil {
		return extract.FieldServiceResult{}, fmt.Errorf("field service request: %w", err)
	}

	var env fieldSvcEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return extract.FieldServiceResult{}, fmt.Errorf("decode field service response: %w", err)
	}
	if env.Status != "success" {
		return extract.FieldServiceResult{}, common.WrapError(common.ErrServiceShape,
			fmt.Sprintf("field service status %q", env.Status))
	}

	out := extract.FieldServiceResult{
		Fields: make(map[string]string, len(env.Campos)),
		Source: env.Fonte,
	}
	for k, v := range env.Campos {
		switch t := v.(type) {
		case string:
			out.Fields[k] = t
		case float64:
			out.Fields[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out.Fields[k] = strconv.FormatBool(t)
		}
	}
	c.log.Info("ocr.fieldsvc.ok", "campos", len(out.Fields), "fonte", env.Fonte)
	return out, nil
}
