package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ouvrio/intake-backend/internal/entity"
)

// ProjectRequestRepository defines the interface for project request persistence
type ProjectRequestRepository interface {
	CreateProjectRequest(ctx context.Context, payload entity.ProjectRequestPayload) (*entity.ProjectRequest, error)
	GetProjectRequestByID(ctx context.Context, id string) (*entity.ProjectRequest, error)
	GetProjectRequestByDialogueID(ctx context.Context, dialogueID string) (*entity.ProjectRequest, error)
	ListProjectRequests(ctx context.Context, category string, limit, offset int) ([]entity.ProjectRequest, error)
}

var _ ProjectRequestRepository = &ProjectRequestPostgres{}

// ProjectRequestPostgres implements ProjectRequestRepository using PostgreSQL
type ProjectRequestPostgres struct {
	db *pgxpool.Pool
}

func NewProjectRequestPostgres(db *pgxpool.Pool) *ProjectRequestPostgres {
	return &ProjectRequestPostgres{db: db}
}

func (r *ProjectRequestPostgres) CreateProjectRequest(ctx context.Context, payload entity.ProjectRequestPayload) (
	*entity.ProjectRequest, error,
) {
	dialogueID, err := uuid.Parse(payload.DialogueID)
	if err != nil {
		return nil, fmt.Errorf("invalid dialogue ID: %w", err)
	}

	fields, err := json.Marshal(payload.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}

	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	const query = `
		INSERT INTO project_requests (id, dialogue_id, category, service, fields)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (dialogue_id) DO UPDATE
			SET category = EXCLUDED.category,
			    service  = EXCLUDED.service,
			    fields   = EXCLUDED.fields
		RETURNING id, dialogue_id, category, service, fields, created_at`

	row := r.db.QueryRow(ctx, query,
		id,
		pgtype.UUID{Bytes: dialogueID, Valid: true},
		payload.Category,
		payload.Service,
		fields,
	)

	return scanProjectRequest(row)
}

func (r *ProjectRequestPostgres) GetProjectRequestByID(ctx context.Context, id string) (*entity.ProjectRequest, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid project request ID: %w", err)
	}

	const query = `
		SELECT id, dialogue_id, category, service, fields, created_at
		FROM project_requests
		WHERE id = $1`

	req, err := scanProjectRequest(r.db.QueryRow(ctx, query, pgtype.UUID{Bytes: requestID, Valid: true}))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrRequestNotFound
	}

	return req, err
}

func (r *ProjectRequestPostgres) GetProjectRequestByDialogueID(ctx context.Context, dialogueID string) (
	*entity.ProjectRequest, error,
) {
	id, err := uuid.Parse(dialogueID)
	if err != nil {
		return nil, fmt.Errorf("invalid dialogue ID: %w", err)
	}

	const query = `
		SELECT id, dialogue_id, category, service, fields, created_at
		FROM project_requests
		WHERE dialogue_id = $1`

	req, err := scanProjectRequest(r.db.QueryRow(ctx, query, pgtype.UUID{Bytes: id, Valid: true}))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrRequestNotFound
	}

	return req, err
}

func (r *ProjectRequestPostgres) ListProjectRequests(ctx context.Context, category string, limit, offset int) (
	[]entity.ProjectRequest, error,
) {
	const query = `
		SELECT id, dialogue_id, category, service, fields, created_at
		FROM project_requests
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list project requests: %w", err)
	}
	defer rows.Close()

	var requests []entity.ProjectRequest
	for rows.Next() {
		req, err := scanProjectRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	return requests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProjectRequest(row rowScanner) (*entity.ProjectRequest, error) {
	var (
		id         pgtype.UUID
		dialogueID pgtype.UUID
		category   string
		service    string
		rawFields  []byte
		createdAt  time.Time
	)

	if err := row.Scan(&id, &dialogueID, &category, &service, &rawFields, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan project request: %w", err)
	}

	fields := map[string]string{}
	if len(rawFields) > 0 {
		if err := json.Unmarshal(rawFields, &fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields: %w", err)
		}
	}

	return &entity.ProjectRequest{
		ID:         uuid.UUID(id.Bytes).String(),
		DialogueID: uuid.UUID(dialogueID.Bytes).String(),
		Category:   category,
		Service:    service,
		Fields:     fields,
		CreatedAt:  createdAt,
	}, nil
}
