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

// UserRepo provides database operations for users.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// UpsertByEmail lazily creates a user on first authenticated request. When the
// email already exists the stored row is returned unchanged; the name from the
// request does not overwrite an existing one.
func (r *UserRepo) UpsertByEmail(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, apperrors.Validation("create user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid user")
	}

	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		// The no-op DO UPDATE makes RETURNING yield the existing row on conflict.
		rows, queryErr := conn.Query(ctx, `
			INSERT INTO users (name, email)
			VALUES ($1, $2)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING id, name, email`,
			req.Name, req.Email)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("upsert user: %w", err))
	}
	return &out, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}

	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT id, name, email FROM users WHERE email = $1`, email)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrUserNotFound, apperrors.ErrCodeNotFound, "user not found")
		}
		return nil, apperrors.MapDBError(fmt.Errorf("get user: %w", err))
	}
	return &out, nil
}
