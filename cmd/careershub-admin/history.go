package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"text/tabwriter"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/bootstrap"
	"github.com/APVS-BRO/ai-careers-hub/internal/util"
)

type listHistoryOptions struct {
	Email string
	Agent string
	Limit int
}

func parseListHistoryFlags(args []string) (listHistoryOptions, error) {
	var opts listHistoryOptions
	fs := flag.NewFlagSet("list-history", flag.ContinueOnError)
	fs.StringVar(&opts.Email, "email", "", "only records owned by this email")
	fs.StringVar(&opts.Agent, "agent", "", "only records with this agent type")
	fs.IntVar(&opts.Limit, "limit", 20, "maximum rows to print")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Limit < 1 {
		opts.Limit = 20
	}
	return opts, nil
}

type historyRow struct {
	ID        int64
	RecordID  string
	Agent     string
	Email     sql.NullString
	CreatedAt time.Time
}

func runListHistory(cmdCtx *commandContext, args []string) error {
	opts, err := parseListHistoryFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	defer closeQuietly(cmdCtx.Logger, "db", db)

	rows, err := queryHistoryRows(ctx, db, opts)
	if err != nil {
		return err
	}
	return renderHistoryTable(rows)
}

func queryHistoryRows(ctx context.Context, db *sql.DB, opts listHistoryOptions) ([]historyRow, error) {
	query := `
		SELECT id, record_id, ai_agent_type, user_email, created_at
		FROM histories
		WHERE ($1 = '' OR user_email = $1)
		  AND ($2 = '' OR ai_agent_type = $2)
		ORDER BY id DESC
		LIMIT $3`

	rs, err := db.QueryContext(ctx, query, opts.Email, opts.Agent, opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rs.Close() //nolint:errcheck // read-only cursor

	var out []historyRow
	for rs.Next() {
		var row historyRow
		if scanErr := rs.Scan(&row.ID, &row.RecordID, &row.Agent, &row.Email, &row.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		out = append(out, row)
	}
	return out, rs.Err()
}

func renderHistoryTable(rows []historyRow) error {
	if len(rows) == 0 {
		return writef(os.Stdout, "no history records found\n")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tRECORD ID\tAGENT\tEMAIL\tCREATED\n"); err != nil {
		return err
	}
	for _, row := range rows {
		email := "—"
		if row.Email.Valid {
			email = row.Email.String
		}
		if err := writef(w, "%d\t%s\t%s\t%s\t%s\n",
			row.ID, row.RecordID, row.Agent, email, util.FormatTimestamp(row.CreatedAt)); err != nil {
			return err
		}
	}
	return w.Flush()
}
