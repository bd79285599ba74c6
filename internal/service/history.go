package service

import (
	"context"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// HistoryServiceOptions groups dependencies for HistoryService.
type HistoryServiceOptions struct {
	Repo core.HistoryRepository
}

// HistoryService exposes the history record operations: idempotent save,
// wholesale content replacement, direct lookup, and per-user listing.
type HistoryService struct {
	repo core.HistoryRepository
}

// NewHistoryService constructs a new HistoryService.
func NewHistoryService(opts HistoryServiceOptions) *HistoryService {
	return &HistoryService{repo: opts.Repo}
}

// Save persists a record unless one with the same record ID already exists,
// and returns the stored row either way. The record is owned by userEmail
// when present.
func (s *HistoryService) Save(ctx context.Context, req *model.SaveHistoryRequest, userEmail *string) (*model.HistoryRecord, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	req.UserEmail = userEmail
	return s.repo.SaveIfAbsent(ctx, req)
}

// ReplaceContent replaces a record's content wholesale, keyed by record ID.
func (s *HistoryService) ReplaceContent(ctx context.Context, req *model.ReplaceContentRequest) (*model.HistoryRecord, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	return s.repo.ReplaceContent(ctx, req)
}

// GetByRecordID fetches one record by its client-generated record ID. No
// ownership check: a direct record ID lookup is treated as possession of a
// capability token.
func (s *HistoryService) GetByRecordID(ctx context.Context, recordID string) (*model.HistoryRecord, error) {
	return s.repo.GetByRecordID(ctx, recordID)
}

// ListForUser returns the user's records, newest first. An absent identity is
// an authorization error, not an empty list.
func (s *HistoryService) ListForUser(ctx context.Context, userEmail *string) ([]*model.HistoryRecord, error) {
	if userEmail == nil || *userEmail == "" {
		return nil, apperrors.Unauthorized("sign in to list your history")
	}
	return s.repo.ListByUserEmail(ctx, *userEmail)
}
