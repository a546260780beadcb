// Package ocr holds the clients for the two text-recovery services: the OCR
// engine itself and the OCR+regex field-extraction service layered on top of
// it.
package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/impacta-labs/fieldpoint/internal/common"
	"github.com/impacta-labs/fieldpoint/internal/extract"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client recognizes text in a base64 image via the external OCR service.
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
		timeout = 30 * time.Second
	}
	return &Client{cfg: cfg, hc: &http.Client{Timeout: timeout}, log: log}
}

type boundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type textElement struct {
	Text        string       `json:"text"`
	Confidence  float64      `json:"confidence"`
	BoundingBox *boundingBox `json:"boundingBox,omitempty"`
}

type ocrEnvelope struct {
	Success      bool          `json:"success"`
	TextElements []textElement `json:"textElements"`
	FullText     string        `json:"fullText"`
}

// Recognize runs one OCR pass and returns the recovered text plus the raw
// token list with confidences and positions.
func (c *Client) Recognize(ctx context.Context, imageBase64 string) (extract.OCRResult, error) {
	body := map[string]any{"image": imageBase64}
	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["X-API-Key"] = c.cfg.APIKey
	}

	raw, _, err := common.SendJSON(ctx, c.hc, c.cfg.Endpoint, body, headers, c.log)
	if err != nil {
		return extract.OCRResult{}, fmt.Errorf("ocr request: %w", err)
	}

	var env ocrEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return extract.OCRResult{}, fmt.Errorf("decode ocr response: %w", err)
	}
	if !env.Success {
		return extract.OCRResult{}, common.WrapError(common.ErrServiceShape, "ocr reported failure")
	}

	res := extract.OCRResult{FullText: env.FullText}
	for _, el := range env.TextElements {
		oe := extract.OCRElement{Text: el.Text, Confidence: el.Confidence}
		if el.BoundingBox != nil {
			oe.BoundingBox = &fields.Position{
				X:      el.BoundingBox.X,
				Y:      el.BoundingBox.Y,
				Width:  el.BoundingBox.Width,
				Height: el.BoundingBox.Height,
			}
		}
		res.Elements = append(res.Elements, oe)
	}
	c.log.Info("ocr.recognize.ok", "elements", len(res.Elements), "text_len", len(res.FullText))
	return res, nil
}
