package request

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/catalog"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/ouvrio/intake-backend/internal/pkg/formatter"
	"github.com/ouvrio/intake-backend/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Brief is a rendered project request document.
type Brief struct {
	Data        []byte
	ContentType string
	Filename    string
}

// RequestUsecase implements the read side of submitted project requests.
type RequestUsecase struct {
	repo      repository.ProjectRequestRepository
	catalog   *catalog.Catalog
	formatter *formatter.Factory
	logger    *zap.Logger
}

// NewUsecase creates a new request use case
func NewUsecase(
	repo repository.ProjectRequestRepository,
	cat *catalog.Catalog,
	factory *formatter.Factory,
	logger *zap.Logger,
) *RequestUsecase {
	return &RequestUsecase{
		repo:      repo,
		catalog:   cat,
		formatter: factory,
		logger:    logger,
	}
}

// GetRequest returns one submitted project request.
func (uc *RequestUsecase) GetRequest(ctx context.Context, id string) (*entity.ProjectRequest, error) {
	req, err := uc.repo.GetProjectRequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project request: %w", err)
	}
	return req, nil
}

// ListRequests returns submitted project requests, newest first,
// optionally filtered by category.
func (uc *RequestUsecase) ListRequests(ctx context.Context, category string, limit, offset int) (
	[]entity.ProjectRequest, error,
) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", entity.ErrInvalidParameter)
	}

	requests, err := uc.repo.ListProjectRequests(ctx, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list project requests: %w", err)
	}
	return requests, nil
}

// GetBrief renders a submitted project request as a downloadable
// document in the requested format.
func (uc *RequestUsecase) GetBrief(ctx context.Context, id string, format entity.ResultFormat) (*Brief, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	req, err := uc.repo.GetProjectRequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project request: %w", err)
	}

	return uc.renderBrief(ctx, req, format)
}

// GetBriefByDialogue renders the brief of the request submitted from a
// given dialogue, so a client can fetch the document after the dialogue
// itself has been discarded.
func (uc *RequestUsecase) GetBriefByDialogue(ctx context.Context, dialogueID string, format entity.ResultFormat) (
	*Brief, error,
) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	req, err := uc.repo.GetProjectRequestByDialogueID(ctx, dialogueID)
	if err != nil {
		return nil, fmt.Errorf("get project request by dialogue: %w", err)
	}

	return uc.renderBrief(ctx, req, format)
}

func (uc *RequestUsecase) renderBrief(ctx context.Context, req *entity.ProjectRequest, format entity.ResultFormat) (
	*Brief, error,
) {
	f, err := uc.formatter.Create(format)
	if err != nil {
		return nil, err
	}

	data, err := f.Format(uc.renderBriefText(req))
	if err != nil {
		return nil, fmt.Errorf("format brief: %w", err)
	}

	ctxzap.Info(ctx, "brief rendered",
		zap.String("project_request_id", req.ID),
		zap.String("format", string(format)),
		zap.Int("size", len(data)),
	)

	return &Brief{
		Data:        data,
		ContentType: f.ContentType(),
		Filename:    "demande-" + req.ID + f.FileExtension(),
	}, nil
}

// renderBriefText lays out the collected fields in resolver order with
// their display names, so the document reads like the dialogue did.
func (uc *RequestUsecase) renderBriefText(req *entity.ProjectRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Catégorie : %s\n", req.Category)
	fmt.Fprintf(&b, "Service : %s\n", req.Service)
	fmt.Fprintf(&b, "Soumise le : %s\n\n", req.CreatedAt.Format("02/01/2006 15:04"))

	seen := make(map[string]bool)
	for _, fieldID := range uc.catalog.Resolve(req.Category) {
		value, ok := req.Fields[fieldID]
		if !ok {
			continue
		}
		seen[fieldID] = true
		name := fieldID
		if def, found := uc.catalog.Field(fieldID); found {
			name = def.DisplayName
		}
		fmt.Fprintf(&b, "%s : %s\n", name, value)
	}

	// Fields recorded under a catalog version that no longer lists them
	// still belong in the document.
	var leftovers []string
	for fieldID := range req.Fields {
		if !seen[fieldID] {
			leftovers = append(leftovers, fieldID)
		}
	}
	sort.Strings(leftovers)
	for _, fieldID := range leftovers {
		fmt.Fprintf(&b, "%s : %s\n", fieldID, req.Fields[fieldID])
	}

	return b.String()
}
