package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// AgentType tags a history record with the tool that produced it. Values
// mirror the dashboard tool paths so the frontend can route straight from a
// history row.
type AgentType string

const (
	// AgentTypeCareerChat tags records produced by the career chat advisor.
	AgentTypeCareerChat AgentType = "/ai-tools/ai-chat"
	// AgentTypeResumeAnalysis tags records produced by the resume analyzer.
	AgentTypeResumeAnalysis AgentType = "/ai-tools/ai-resume-analysis"
	// AgentTypeRoadmapGenerator tags records produced by the roadmap generator.
	AgentTypeRoadmapGenerator AgentType = "/ai-tools/ai-roadmap-generator"
)

// HistoryRecord is a persisted unit of work product (chat session, resume
// report, or roadmap) keyed by a client-generated record ID. Records are
// inserted at most once per record ID and never deleted by this service.
type HistoryRecord struct {
	ID          int64           `json:"id"            db:"id"`
	RecordID    string          `json:"recordId"      db:"record_id"`
	Content     json.RawMessage `json:"content"       db:"content"`
	UserEmail   *string         `json:"userEmail"     db:"user_email"`
	CreatedAt   time.Time       `json:"createdAt"     db:"created_at"`
	AIAgentType string          `json:"aiAgentType"   db:"ai_agent_type"`
	URLs        *string         `json:"urls,omitempty" db:"urls"`
}

// SaveHistoryRequest represents a request to persist a history record.
type SaveHistoryRequest struct {
	RecordID    string          `json:"recordId"`
	Content     json.RawMessage `json:"content"`
	AIAgentType string          `json:"aiAgentType"`
	UserEmail   *string         `json:"userEmail,omitempty"`
	URLs        *string         `json:"urls,omitempty"`
}

// Validate validates the SaveHistoryRequest fields.
func (r *SaveHistoryRequest) Validate() error {
	if strings.TrimSpace(r.RecordID) == "" {
		return errors.New("recordId is required")
	}
	if len(r.Content) == 0 {
		return errors.New("content is required")
	}
	if !json.Valid(r.Content) {
		return errors.New("content must be valid JSON")
	}
	return nil
}

// ReplaceContentRequest represents a full content replacement keyed by record ID.
type ReplaceContentRequest struct {
	RecordID string          `json:"recordId"`
	Content  json.RawMessage `json:"content"`
}

// Validate validates the ReplaceContentRequest fields.
func (r *ReplaceContentRequest) Validate() error {
	if strings.TrimSpace(r.RecordID) == "" {
		return errors.New("recordId is required")
	}
	if len(r.Content) == 0 || !json.Valid(r.Content) {
		return errors.New("content must be valid JSON")
	}
	return nil
}
