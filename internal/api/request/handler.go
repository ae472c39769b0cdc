package request

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/ouvrio/intake-backend/internal/pkg/logger"
	"github.com/ouvrio/intake-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase RequestUsecase
}

func NewHandler(usecase RequestUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GetRequest handles GET /v1/project-requests/{id}
func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetRequest")
	id := chi.URLParam(r, "id")

	req, err := h.usecase.GetRequest(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toRequestDTO(req))
}

// ListRequests handles GET /v1/project-requests
func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListRequests")

	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)
	category := r.URL.Query().Get("category")

	requests, err := h.usecase.ListRequests(ctx, category, limit, offset)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	dtos := make([]entity.ProjectRequestDTO, 0, len(requests))
	for i := range requests {
		dtos = append(dtos, toRequestDTO(&requests[i]))
	}

	response.Success(w, dtos)
}

// GetBrief handles GET /v1/project-requests/{id}/brief?format=pdf
func (h *Handler) GetBrief(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetBrief")
	id := chi.URLParam(r, "id")

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	brief, err := h.usecase.GetBrief(ctx, id, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.File(w, brief.ContentType, brief.Filename, brief.Data)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "project request lookup failed", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrRequestNotFound):
		response.Error(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "project request not found")
	case errors.Is(err, entity.ErrInvalidParameter):
		response.Error(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "internal server error")
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
