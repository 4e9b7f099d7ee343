package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const systemInstruction = "You analyze legal and insurance case documents for a law firm. " +
	"Respond with a single JSON object and nothing else. Keys: " +
	`"category" (one of: denial_letter, estimate, policy, pleading, correspondence, inspection_report, proof_of_loss, unknown), ` +
	`"confidence" (0.0-1.0), "summary" (2-3 sentences), "key_findings" (array of strings), ` +
	`"key_dates" (array of strings), "amounts" (array of numbers).`

// BuildPrompt renders the user prompt for either provider. The caller is
// responsible for truncating text to the configured window first.
func BuildPrompt(text string, filename string) string {
	return fmt.Sprintf("Filename: %s\n\nDocument text:\n%s", filename, text)
}

func SystemInstruction() string {
	return systemInstruction
}

// DecodeInsights parses a model response leniently: code fences are stripped
// and, failing a direct parse, the outermost brace pair is tried. Models
// wrap JSON in prose often enough that strict decoding loses real answers.
func DecodeInsights(raw string) (*Insights, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var insights Insights
	if err := json.Unmarshal([]byte(raw), &insights); err == nil {
		return &insights, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object in model response")
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &insights); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}
	return &insights, nil
}
