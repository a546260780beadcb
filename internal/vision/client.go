// Package vision talks to the external vision-AI endpoint that turns a
// screenshot into a structured field list. The reply is schema-validated
// before anything in it is trusted; any deviation is reported as an error so
// the orchestrator can fall through to the next tier.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/extract"
)

type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

type Client struct {
	cfg Config
	hc  *http.Client
	log *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 45 * time.Second
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: timeout},
		log: log,
	}
}

type envelope struct {
	Success bool                  `json:"success"`
	Fields  []extract.VisionField `json:"fields"`
}

// ExtractFields sends the base64 image and returns the service's field list.
func (c *Client) ExtractFields(ctx context.Context, imageBase64 string) ([]extract.VisionField, error) {
	body := map[string]any{"image": imageBase64}
	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["X-API-Key"] = c.cfg.APIKey
	}

	raw, _, err := common.SendJSON(ctx, c.hc, c.cfg.Endpoint, body, headers, c.log)
	if err != nil {
		return nil, fmt.Errorf("vision request: %w", err)
	}

	// Shape check first: a reply without a fields array is a tier failure,
	// not a partial result.
	if err := ValidateResponseShape(raw); err != nil {
		c.log.Warn("vision.extract.bad_shape", "error", err)
		return nil, common.WrapError(common.ErrServiceShape, "vision response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode vision response: %w", err)
	}
	c.log.Info("vision.extract.ok", "success", env.Success, "fields", len(env.Fields))
	return env.Fields, nil
}
