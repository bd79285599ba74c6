package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/APVS-BRO/ai-careers-hub/internal/data/pgxutil"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
	"github.com/jackc/pgx/v5"
)

const historyColumns = `id, record_id, content, user_email, created_at, ai_agent_type, urls`

// HistoryRepo provides database operations for history records.
type HistoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewHistoryRepo creates a new HistoryRepo with real time provider.
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewHistoryRepoWithTimeProvider creates a new HistoryRepo with a custom time provider (useful for tests).
func NewHistoryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *HistoryRepo {
	return &HistoryRepo{DB: db, timeProvider: tp}
}

// SaveIfAbsent inserts a history record unless one with the same record ID
// already exists. The insert uses ON CONFLICT DO NOTHING against the unique
// record_id constraint, so concurrent calls with the same record ID cannot
// both insert: the first writer wins and everyone gets the stored row back.
func (r *HistoryRepo) SaveIfAbsent(
	ctx context.Context,
	req *model.SaveHistoryRequest,
) (*model.HistoryRecord, error) {
	if req == nil {
		return nil, apperrors.Validation("save history request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid history record")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.HistoryRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			INSERT INTO histories (record_id, content, user_email, created_at, ai_agent_type, urls)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (record_id) DO NOTHING
			RETURNING `+historyColumns,
			req.RecordID,
			req.Content,
			req.UserEmail,
			createdAt,
			req.AIAgentType,
			req.URLs,
		)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HistoryRecord])
		return collectErr
	})
	if err == nil {
		return &out, nil
	}

	// ON CONFLICT DO NOTHING yields no row when the record already exists;
	// return the stored row so callers always see what is persisted.
	if errors.Is(err, pgx.ErrNoRows) {
		return r.GetByRecordID(ctx, req.RecordID)
	}
	return nil, apperrors.MapDBError(fmt.Errorf("save history record: %w", err))
}

// GetByRecordID retrieves a history record by its client-generated record ID.
func (r *HistoryRepo) GetByRecordID(ctx context.Context, recordID string) (*model.HistoryRecord, error) {
	if recordID == "" {
		return nil, apperrors.ValidationField("recordId", "recordId is required")
	}

	var out model.HistoryRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT `+historyColumns+` FROM histories WHERE record_id = $1`, recordID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HistoryRecord])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrHistoryNotFound, apperrors.ErrCodeNotFound, "history record not found")
		}
		return nil, apperrors.MapDBError(fmt.Errorf("get history record: %w", err))
	}
	return &out, nil
}

// ListByUserEmail retrieves a user's history records, newest first.
func (r *HistoryRepo) ListByUserEmail(ctx context.Context, email string) ([]*model.HistoryRecord, error) {
	if email == "" {
		return nil, apperrors.ValidationField("userEmail", "user email is required")
	}

	var rowsOut []model.HistoryRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT `+historyColumns+` FROM histories WHERE user_email = $1 ORDER BY id DESC`, email)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.HistoryRecord])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list history records: %w", err))
	}

	res := make([]*model.HistoryRecord, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ReplaceContent replaces a record's content wholesale, keyed by record ID.
// There is no partial merge; the stored content becomes exactly the input.
func (r *HistoryRepo) ReplaceContent(
	ctx context.Context,
	req *model.ReplaceContentRequest,
) (*model.HistoryRecord, error) {
	if req == nil {
		return nil, apperrors.Validation("replace content request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid content replacement")
	}

	var out model.HistoryRecord
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			UPDATE histories SET content = $2
			WHERE record_id = $1
			RETURNING `+historyColumns,
			req.RecordID, req.Content)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HistoryRecord])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrHistoryNotFound, apperrors.ErrCodeNotFound, "history record not found")
		}
		return nil, apperrors.MapDBError(fmt.Errorf("replace history content: %w", err))
	}
	return &out, nil
}
