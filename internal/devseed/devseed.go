// Package devseed populates a development database with a demo user and a
// few history records, one per agent tool, so the dashboard has data to show
// without running any agent.
package devseed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/APVS-BRO/ai-careers-hub/internal/data"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
)

// DemoUserEmail is the email every seeded record is attached to.
const DemoUserEmail = "demo@example.com"

// Run executes the development seeding workflow against the provided DB.
// Seeding is idempotent: record IDs are fixed, so re-runs change nothing.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "devseed")

	users := data.NewUserRepo(db)
	user, err := users.UpsertByEmail(ctx, &model.CreateUserRequest{
		Name:  "Demo User",
		Email: DemoUserEmail,
	})
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	logger.InfoContext(ctx, "demo user ready", "email", user.Email)

	histories := data.NewHistoryRepo(db)
	for _, req := range seedRecords() {
		record, saveErr := histories.SaveIfAbsent(ctx, req)
		if saveErr != nil {
			return fmt.Errorf("seed history %s: %w", req.RecordID, saveErr)
		}
		logger.InfoContext(ctx, "history record ready",
			"record_id", record.RecordID, "agent_type", record.AIAgentType)
	}

	return nil
}

func seedRecords() []*model.SaveHistoryRequest {
	email := DemoUserEmail
	return []*model.SaveHistoryRequest{
		{
			RecordID:    "seed-chat-0001",
			Content:     json.RawMessage(seedChatContent),
			AIAgentType: string(model.AgentTypeCareerChat),
			UserEmail:   &email,
		},
		{
			RecordID:    "seed-resume-0001",
			Content:     json.RawMessage(seedResumeContent),
			AIAgentType: string(model.AgentTypeResumeAnalysis),
			UserEmail:   &email,
		},
		{
			RecordID:    "seed-roadmap-0001",
			Content:     json.RawMessage(seedRoadmapContent),
			AIAgentType: string(model.AgentTypeRoadmapGenerator),
			UserEmail:   &email,
		},
	}
}

const seedChatContent = `[
	{"role": "user", "content": "How do I move from QA into backend development?"},
	{"role": "assistant", "content": "Start by automating the tests you already write. Pick one service you test daily, learn its language, and contribute a small fix. Your QA background is an asset: you already know how systems fail."}
]`

const seedResumeContent = `{
	"overall_score": 78,
	"overall_feedback": "Good",
	"summary_comment": "Solid engineering resume; quantify your impact to stand out.",
	"sections": {
		"contact_info": {"score": 95, "comment": "Complete and professional."},
		"experience": {"score": 75, "comment": "Add measurable outcomes to each role."},
		"education": {"score": 85, "comment": "Relevant degree, well presented."},
		"skills": {"score": 70, "comment": "Group skills by proficiency level."}
	},
	"tips_for_improvement": [
		"Add metrics to your experience bullets.",
		"Lead each role with its biggest achievement.",
		"Trim the skills list to what you actually use."
	],
	"whats_good": ["Clear layout", "Strong technical vocabulary"],
	"needs_improvement": ["Impact metrics", "Skills organization"]
}`

const seedRoadmapContent = `{
	"roadmapTitle": "Backend Developer Roadmap",
	"description": "A practical path from language basics to production services.",
	"duration": "4-6 Months",
	"initialNodes": [
		{"id": "1", "type": "turbo", "position": {"x": 0, "y": 0},
		 "data": {"title": "Go Fundamentals", "description": "Syntax, tooling, and the standard library.", "link": "https://go.dev/tour"}},
		{"id": "2", "type": "turbo", "position": {"x": 0, "y": 200},
		 "data": {"title": "SQL and Postgres", "description": "Schema design, joins, and indexes.", "link": "https://www.postgresql.org/docs/"}},
		{"id": "3", "type": "turbo", "position": {"x": 0, "y": 400},
		 "data": {"title": "HTTP Services", "description": "Routing, middleware, and JSON APIs.", "link": "https://pkg.go.dev/net/http"}}
	],
	"initialEdges": [
		{"id": "e1-2", "source": "1", "target": "2"},
		{"id": "e2-3", "source": "2", "target": "3"}
	]
}`
