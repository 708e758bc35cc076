// Package jsonutil extracts and parses JSON from LLM responses that may be
// wrapped in markdown code fences.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

const fence = "```"

// StripMarkdownFences removes ```json ... ``` or ``` ... ``` wrapping from text.
// Text without a leading fence is returned trimmed but otherwise untouched.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	body := strings.TrimPrefix(text, fence)
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// first line holds an optional language tag (```json)
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, fence)

	return strings.TrimSpace(body)
}

// ParseJSON strips markdown fences from raw LLM text and unmarshals the
// remainder into T. Prose around the JSON is not tolerated: the whole
// unfenced text must be one JSON value.
func ParseJSON[T any](raw string) (T, error) {
	var result T
	text := StripMarkdownFences(raw)
	if text == "" {
		return result, fmt.Errorf("no JSON content found")
	}

	if err := json.Unmarshal([]byte(text), &result); err != nil {
		var zero T
		preview := text
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return zero, fmt.Errorf("invalid JSON: %w (text: %s)", err, preview)
	}
	return result, nil
}
