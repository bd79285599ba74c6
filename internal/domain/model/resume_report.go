package model

import (
	"errors"
	"fmt"
)

// SectionScore holds the per-section verdict in a resume report.
type SectionScore struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// ResumeSections groups the four fixed resume sections the analyzer scores.
type ResumeSections struct {
	ContactInfo SectionScore `json:"contact_info"`
	Experience  SectionScore `json:"experience"`
	Education   SectionScore `json:"education"`
	Skills      SectionScore `json:"skills"`
}

// ResumeReport is the structured output contract of the resume analyzer
// agent: integer 0-100 scores, feedback strings, and 1-5 element tip /
// strength / weakness arrays.
type ResumeReport struct {
	OverallScore       int            `json:"overall_score"`
	OverallFeedback    string         `json:"overall_feedback"`
	SummaryComment     string         `json:"summary_comment"`
	Sections           ResumeSections `json:"sections"`
	TipsForImprovement []string       `json:"tips_for_improvement"`
	WhatsGood          []string       `json:"whats_good"`
	NeedsImprovement   []string       `json:"needs_improvement"`
}

func validScore(score int) bool {
	return score >= 0 && score <= 100
}

// Validate checks the report against the upstream agent's output contract.
// Shape correctness beyond this is trusted from the agent's instructions.
func (r *ResumeReport) Validate() error {
	if !validScore(r.OverallScore) {
		return fmt.Errorf("overall_score must be between 0 and 100, got %d", r.OverallScore)
	}
	sections := map[string]SectionScore{
		"contact_info": r.Sections.ContactInfo,
		"experience":   r.Sections.Experience,
		"education":    r.Sections.Education,
		"skills":       r.Sections.Skills,
	}
	for name, sec := range sections {
		if !validScore(sec.Score) {
			return fmt.Errorf("sections.%s.score must be between 0 and 100, got %d", name, sec.Score)
		}
	}
	if err := validateTipCount("tips_for_improvement", r.TipsForImprovement); err != nil {
		return err
	}
	if err := validateTipCount("whats_good", r.WhatsGood); err != nil {
		return err
	}
	return validateTipCount("needs_improvement", r.NeedsImprovement)
}

func validateTipCount(field string, items []string) error {
	if len(items) < 1 || len(items) > 5 {
		return fmt.Errorf("%s must contain between 1 and 5 entries, got %d", field, len(items))
	}
	for _, item := range items {
		if item == "" {
			return errors.New(field + " entries must be non-empty")
		}
	}
	return nil
}
