package model

import (
	"encoding/json"
	"fmt"
)

// ChatMessage is one turn in a persisted career chat transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DecodeContent interprets a history record's content blob according to its
// agent type tag, returning the typed, validated variant. Unknown agent types
// pass through as raw JSON so older records stay readable.
func DecodeContent(agentType AgentType, raw json.RawMessage) (any, error) {
	switch agentType {
	case AgentTypeCareerChat:
		var transcript []ChatMessage
		if err := json.Unmarshal(raw, &transcript); err != nil {
			return nil, fmt.Errorf("decode chat transcript: %w", err)
		}
		return transcript, nil
	case AgentTypeResumeAnalysis:
		var report ResumeReport
		if err := json.Unmarshal(raw, &report); err != nil {
			return nil, fmt.Errorf("decode resume report: %w", err)
		}
		if err := report.Validate(); err != nil {
			return nil, fmt.Errorf("invalid resume report: %w", err)
		}
		return &report, nil
	case AgentTypeRoadmapGenerator:
		var roadmap Roadmap
		if err := json.Unmarshal(raw, &roadmap); err != nil {
			return nil, fmt.Errorf("decode roadmap: %w", err)
		}
		if err := roadmap.Validate(); err != nil {
			return nil, fmt.Errorf("invalid roadmap: %w", err)
		}
		return &roadmap, nil
	default:
		return raw, nil
	}
}
