// Package agent holds the agent-facing domain logic: output extraction and
// the system prompts for each workflow.
package agent

import (
	"encoding/json"
	"strings"

	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// Extract strips a markdown code-fence wrapper from raw agent output, if
// present, and parses the remainder as JSON. Agents are instructed to emit
// JSON only, but models routinely wrap payloads in ```json fences anyway.
//
// Fenced and unfenced input produce identical results. Invalid JSON returns a
// structured parse error, never a panic.
func Extract(raw string) (json.RawMessage, error) {
	trimmed := StripFence(raw)
	if trimmed == "" {
		return nil, apperrors.Parse("agent output is empty", nil)
	}

	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, apperrors.Parse("agent output is not valid JSON", err)
	}
	return parsed, nil
}

// StripFence removes a leading ```json (or bare ```) fence and a trailing
// ``` fence. Input without fences is returned trimmed but otherwise intact.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimLeft(s, " \t\r\n")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimRight(s, " \t\r\n")
	}
	return s
}
