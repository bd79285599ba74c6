package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// EventName identifies which agent workflow an event triggers.
type EventName string

const (
	// EventCareerChat triggers the career chat advisor agent.
	EventCareerChat EventName = "AI_Career_Chat_Agent"
	// EventResumeAnalysis triggers the resume analyzer agent.
	EventResumeAnalysis EventName = "AI_Resume_Agent"
	// EventRoadmapGenerator triggers the learning roadmap generator agent.
	EventRoadmapGenerator EventName = "AiRoadMapGeneratorAgent"
)

// Valid returns true if the EventName is a known agent event.
func (e EventName) Valid() bool {
	return e == EventCareerChat || e == EventResumeAnalysis || e == EventRoadmapGenerator
}

// AgentEvent is the unit of dispatch: a named event with a serializable payload.
type AgentEvent struct {
	Name EventName       `json:"name"`
	Data json.RawMessage `json:"data"`
}

// Validate validates the AgentEvent fields.
func (e *AgentEvent) Validate() error {
	if !e.Name.Valid() {
		return fmt.Errorf("invalid event name: %q", e.Name)
	}
	if len(e.Data) == 0 {
		return errors.New("event data is required")
	}
	return nil
}

// ChatEventData is the payload for EventCareerChat.
type ChatEventData struct {
	UserInput string `json:"userInput"`
}

// Validate validates the chat payload.
func (d *ChatEventData) Validate() error {
	if strings.TrimSpace(d.UserInput) == "" {
		return errors.New("userInput is required")
	}
	return nil
}

// ResumeEventData is the payload for EventResumeAnalysis. The PDF travels as
// base64 so the worker can re-upload the original file to the media CDN.
type ResumeEventData struct {
	RecordID         string `json:"recordId"`
	PDFText          string `json:"pdfText"`
	Base64ResumeFile string `json:"base64resumefile,omitempty"`
	AIAgentType      string `json:"aiAgentType"`
	UserEmail        string `json:"userEmail,omitempty"`
}

// Validate validates the resume payload.
func (d *ResumeEventData) Validate() error {
	if strings.TrimSpace(d.RecordID) == "" {
		return errors.New("recordId is required")
	}
	if strings.TrimSpace(d.PDFText) == "" {
		return errors.New("pdfText is required")
	}
	return nil
}

// RoadmapEventData is the payload for EventRoadmapGenerator.
type RoadmapEventData struct {
	RecordID  string `json:"recordId"`
	UserInput string `json:"userInput"`
	UserEmail string `json:"userEmail,omitempty"`
}

// Validate validates the roadmap payload.
func (d *RoadmapEventData) Validate() error {
	if strings.TrimSpace(d.RecordID) == "" {
		return errors.New("recordId is required")
	}
	if strings.TrimSpace(d.UserInput) == "" {
		return errors.New("userInput is required")
	}
	return nil
}

// NewAgentEvent marshals a typed payload into an AgentEvent.
func NewAgentEvent(name EventName, data any) (AgentEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return AgentEvent{}, fmt.Errorf("marshal event data: %w", err)
	}
	ev := AgentEvent{Name: name, Data: raw}
	if validateErr := ev.Validate(); validateErr != nil {
		return AgentEvent{}, validateErr
	}
	return ev, nil
}
