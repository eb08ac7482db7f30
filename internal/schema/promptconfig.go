package schema

import (
	"encoding/json"
	"log/slog"
	"os"
)

// PromptConfig is the optional external JSON document enumerating, per page
// index, the field list to request. It only shapes prompt construction; the
// registry remains the source of truth for decoding and storage.
type PromptConfig struct {
	Pages []PromptPage `json:"pages"`
}

type PromptPage struct {
	PageNumber int      `json:"page_number"`
	Fields     []string `json:"fields"`
}

// FieldsFor returns the configured field list for a page, or nil when the
// page is not configured.
func (c *PromptConfig) FieldsFor(pageIndex int) []string {
	if c == nil {
		return nil
	}
	for _, p := range c.Pages {
		if p.PageNumber == pageIndex {
			return p.Fields
		}
	}
	return nil
}

// LoadPromptConfig reads the config file at path. A missing or malformed
// file is not fatal: prompts fall back to the registry field lists.
func LoadPromptConfig(path string, logger *slog.Logger) *PromptConfig {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return &PromptConfig{}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("schema.promptconfig.read_failed", "path", path, "error", err)
		return &PromptConfig{}
	}
	var cfg PromptConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		logger.Warn("schema.promptconfig.parse_failed", "path", path, "error", err)
		return &PromptConfig{}
	}
	logger.Info("schema.promptconfig.loaded", "path", path, "pages", len(cfg.Pages))
	return &cfg
}
