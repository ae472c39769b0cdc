package dialogue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/ouvrio/intake-backend/internal/pkg/logger"
	"github.com/ouvrio/intake-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase DialogueUsecase
	briefs  BriefProvider
}

func NewHandler(usecase DialogueUsecase, briefs BriefProvider) *Handler {
	return &Handler{usecase: usecase, briefs: briefs}
}

// StartDialogue handles POST /v1/dialogues - open a new intake session
func (h *Handler) StartDialogue(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartDialogue")

	var req entity.StartDialogueRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
			response.Error(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), "invalid request body")
			return
		}
	}

	result, err := h.usecase.StartDialogue(ctx, req.Category, req.Service)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toDialogueReply(result))
}

// PostMessage handles POST /v1/dialogues/{id}/messages - one user turn
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "PostMessage")
	dialogueID := chi.URLParam(r, "id")

	var req entity.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), "invalid request body")
		return
	}

	result, err := h.usecase.HandleMessage(ctx, dialogueID, req.Text)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toDialogueReply(result))
}

// GetDialogue handles GET /v1/dialogues/{id} - current draft state
func (h *Handler) GetDialogue(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetDialogue")
	dialogueID := chi.URLParam(r, "id")

	draft, missing, err := h.usecase.GetDialogue(ctx, dialogueID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toDialogueDTO(draft, missing))
}

// GetBrief handles GET /v1/dialogues/{id}/brief?format=pdf - the document
// of the project request this dialogue produced
func (h *Handler) GetBrief(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetDialogueBrief")
	dialogueID := chi.URLParam(r, "id")

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	brief, err := h.briefs.GetBriefByDialogue(ctx, dialogueID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.File(w, brief.ContentType, brief.Filename, brief.Data)
}

// CancelDialogue handles POST /v1/dialogues/{id}/cancel - discard draft
func (h *Handler) CancelDialogue(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CancelDialogue")
	dialogueID := chi.URLParam(r, "id")

	if err := h.usecase.CancelDialogue(ctx, dialogueID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "dialogue request failed", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrDialogueNotFound):
		response.Error(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "dialogue not found")
	case errors.Is(err, entity.ErrRequestNotFound):
		response.Error(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), "project request not found")
	case errors.Is(err, entity.ErrDialogueComplete):
		response.Error(w, http.StatusConflict, http.StatusText(http.StatusConflict), "dialogue already complete")
	case errors.Is(err, entity.ErrEmptyUtterance), errors.Is(err, entity.ErrInvalidFieldValue),
		errors.Is(err, entity.ErrInvalidParameter):
		response.Error(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "internal server error")
	}
}
