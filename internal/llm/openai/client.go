package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/claims-extract/internal/llm"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// ExtractPage implements llm.PageExtractor using vision chat/completions:
// the page image goes up as a data-URL content part alongside the page's
// field list, and the response is validated against the page's JSON Schema.
func (c *Client) ExtractPage(ctx context.Context, req llm.ExtractPageRequest) (report.PageRecord, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	mimeType := req.ImageMIME
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"page", req.Page.Index,
		"fields", len(req.Page.Fields),
		"image_bytes", len(req.ImageB64),
	)

	pageSchema := schema.BuildPageJSONSchema(req.Page)
	sys := llm.BuildSystemPrompt()
	user := llm.BuildPagePrompt(req.Page, req.PromptFields)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": user + "\n\nReturn ONLY JSON that matches the provided schema."},
				{"type": "image_url", "image_url": map[string]any{
					"url": "data:" + mimeType + ";base64," + req.ImageB64,
				}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(pageSchema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "page", req.Page.Index, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(pageSchema, rawContent); err != nil {
		if c.cfg.Strict {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "page", req.Page.Index, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, rawContent, fmt.Errorf("schema validation failed: %w", err)
		}
		// Lenient sanitize: normalize offenders and re-validate.
		cleaned, touched, sErr := llm.SanitizePageJSON(rawContent, req.Page, c.log)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(pageSchema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "page", req.Page.Index, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, cleaned, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "touched", touched,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	rec, err := llm.DecodePageRecord(rawContent, req.Page)
	if err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, rawContent, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"page", req.Page.Index,
		"fields", len(rec),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, rawContent, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
