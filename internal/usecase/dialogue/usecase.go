package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/catalog"
	"github.com/ouvrio/intake-backend/internal/config"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/ouvrio/intake-backend/internal/pkg/logger"
	"github.com/ouvrio/intake-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

const (
	handoffFailedReply = "Votre demande est complète, mais nous n'avons pas pu l'enregistrer. " +
		"Souhaitez-vous réessayer ?"
	handoffDoneReply = "Merci ! Votre demande de projet est complète et a été transmise aux professionnels. " +
		"Vous recevrez bientôt des propositions de devis."
)

// TurnResult is the outcome of one fully resolved turn.
type TurnResult struct {
	Draft            *entity.Draft
	Reply            string
	Intent           entity.Intent
	ProjectRequestID string
}

// DialogueUsecase implements the intake dialogue business logic: one
// user turn in, one classified + transitioned + answered turn out.
type DialogueUsecase struct {
	catalog    *catalog.Catalog
	drafts     DraftStore
	projects   ProjectCreator
	classifier *Classifier
	responder  *Responder
	policy     *Policy
	locks      *draftLocks
	logger     *zap.Logger
}

// NewUsecase creates a new dialogue use case
func NewUsecase(
	cat *catalog.Catalog,
	drafts DraftStore,
	projects ProjectCreator,
	classifierConnector IntentClassifier,
	generatorConnector TextGenerator,
	cfg config.DialogueConfig,
	log *zap.Logger,
) *DialogueUsecase {
	return &DialogueUsecase{
		catalog:    cat,
		drafts:     drafts,
		projects:   projects,
		classifier: NewClassifier(classifierConnector, cfg.ClassifyTimeout, cfg.RecentTurnWindow, log),
		responder:  NewResponder(generatorConnector, cfg.GenerateTimeout, cfg.MaxReplyLength, log),
		policy:     NewPolicy(cat),
		locks:      newDraftLocks(),
		logger:     log,
	}
}

// StartDialogue opens a new intake session. Category and service may be
// pre-filled (the client picked them in the UI) or left empty, in which
// case the dialogue starts by asking for them.
func (uc *DialogueUsecase) StartDialogue(ctx context.Context, category, service string) (*TurnResult, error) {
	draft := entity.NewDraft(uuid.New().String(), "", "")
	ctx = logger.WithDialogue(ctx, draft.ID)

	for fieldID, value := range map[string]string{
		entity.FieldProjectCategory: category,
		entity.FieldServiceType:     service,
	} {
		if strings.TrimSpace(value) == "" {
			continue
		}
		def, ok := uc.catalog.Field(fieldID)
		if !ok {
			continue
		}
		if err := validator.ValidateFieldValue(def, value); err != nil {
			return nil, fmt.Errorf("%w: %s", entity.ErrInvalidFieldValue, validator.ConstraintMessage(err))
		}
		draft.SetValue(fieldID, validator.NormalizeFieldValue(def, value))
	}

	next, ok := uc.catalog.NextMissing(draft.Category, draft.Values)
	if !ok {
		// Only possible with a degenerate catalog; a fresh draft always
		// has missing fields.
		draft.MarkComplete()
		return nil, entity.ErrDialogueComplete
	}
	draft.AwaitField(next)

	def, _ := uc.catalog.Field(next)
	gen := uc.responder.Question(ctx, def, draftSummary(uc.catalog, draft), "")
	draft.AddSystemTurn(gen.Text)

	if err := uc.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	ctxzap.Info(ctx, "dialogue started",
		zap.String("category", draft.Category),
		zap.String("first_field", next),
	)

	return &TurnResult{Draft: draft, Reply: gen.Text}, nil
}

// HandleMessage resolves one user turn: classify, transition, respond.
// Turns of one dialogue are strictly sequential; a second message for
// the same dialogue waits until the first is fully resolved.
func (uc *DialogueUsecase) HandleMessage(ctx context.Context, dialogueID, text string) (*TurnResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrEmptyUtterance
	}

	mu := uc.locks.lock(dialogueID)
	defer uc.locks.unlock(dialogueID, mu)

	ctx = logger.WithDialogue(ctx, dialogueID)

	draft, err := uc.drafts.GetDraft(ctx, dialogueID)
	if err != nil {
		return nil, err
	}

	if draft.State.Phase == entity.PhaseComplete {
		if !draft.PendingHandoff {
			return nil, entity.ErrDialogueComplete
		}
		// All fields are collected; any follow-up message retries the
		// failed handoff.
		draft.AddUserTurn(text, entity.IntentCompleteAnswer)
		return uc.handoff(ctx, draft, entity.IntentCompleteAnswer)
	}

	openField := openFieldDescription(uc.catalog, draft.State.FieldID)
	classification := uc.classifier.Classify(ctx, draft, openField, text)
	if classification.Fallback {
		ctxzap.Info(ctx, "classification fell back to default intent")
	}

	draft.AddUserTurn(text, classification.Intent)
	decision := uc.policy.Apply(draft, classification.Intent, text)

	ctxzap.Info(ctx, "turn transitioned",
		zap.String("intent", string(classification.Intent)),
		zap.String("phase", string(draft.State.Phase)),
		zap.String("field_id", decision.FieldID),
	)

	if decision.Action == ActionComplete {
		return uc.handoff(ctx, draft, classification.Intent)
	}

	reply := uc.respond(ctx, draft, decision, text)
	draft.AddSystemTurn(reply)

	if err := uc.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	return &TurnResult{Draft: draft, Reply: reply, Intent: classification.Intent}, nil
}

// respond turns a policy decision into literal dialogue text.
func (uc *DialogueUsecase) respond(ctx context.Context, draft *entity.Draft, decision Decision, utterance string) string {
	def, ok := uc.catalog.Field(decision.FieldID)
	if !ok {
		return handoffFailedReply
	}
	summary := draftSummary(uc.catalog, draft)

	switch decision.Action {
	case ActionAskField:
		return uc.responder.Question(ctx, def, summary, decision.StoredValue).Text

	case ActionOfferSuggestions:
		gen := uc.responder.Suggestions(ctx, def, summary)
		draft.OfferSuggestions(decision.FieldID, gen.Suggestions)
		return gen.Text

	case ActionAnswerMeta:
		return uc.responder.Answer(ctx, def, utterance, summary).Text

	case ActionReask:
		return fmt.Sprintf("Cette réponse ne convient pas : %s. %s", decision.Constraint, def.Prompt)
	}

	return def.Prompt
}

// handoff packages the completed draft for the persistence collaborator.
// Success discards the draft; failure keeps it around with a recoverable
// system turn so the user can retry.
func (uc *DialogueUsecase) handoff(ctx context.Context, draft *entity.Draft, intent entity.Intent) (*TurnResult, error) {
	payload := entity.ProjectRequestPayload{
		DialogueID: draft.ID,
		Category:   draft.Category,
		Service:    draft.Service,
		Fields:     draft.Values,
	}

	created, err := uc.projects.CreateProjectRequest(ctx, payload)
	if err != nil {
		ctxzap.Error(ctx, "project request handoff failed", zap.Error(err))

		draft.PendingHandoff = true
		draft.AddSystemTurn(handoffFailedReply)
		if saveErr := uc.drafts.SaveDraft(ctx, draft); saveErr != nil {
			return nil, fmt.Errorf("save draft after failed handoff: %w", saveErr)
		}

		return &TurnResult{Draft: draft, Reply: handoffFailedReply, Intent: intent}, nil
	}

	draft.PendingHandoff = false
	draft.AddSystemTurn(handoffDoneReply)

	if err := uc.drafts.DeleteDraft(ctx, draft.ID); err != nil {
		ctxzap.Warn(ctx, "discard completed draft failed", zap.Error(err))
	}

	ctxzap.Info(ctx, "project request created", zap.String("project_request_id", created.ID))

	return &TurnResult{
		Draft:            draft,
		Reply:            handoffDoneReply,
		Intent:           intent,
		ProjectRequestID: created.ID,
	}, nil
}

// GetDialogue returns the draft and its remaining missing fields.
func (uc *DialogueUsecase) GetDialogue(ctx context.Context, dialogueID string) (*entity.Draft, []string, error) {
	draft, err := uc.drafts.GetDraft(ctx, dialogueID)
	if err != nil {
		return nil, nil, err
	}
	return draft, uc.policy.MissingFields(draft), nil
}

// CancelDialogue discards an in-flight draft. It waits for the turn in
// progress, if any, to fully resolve first.
func (uc *DialogueUsecase) CancelDialogue(ctx context.Context, dialogueID string) error {
	mu := uc.locks.lock(dialogueID)
	defer uc.locks.unlock(dialogueID, mu)

	if _, err := uc.drafts.GetDraft(ctx, dialogueID); err != nil {
		return err
	}
	if err := uc.drafts.DeleteDraft(ctx, dialogueID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	ctxzap.Info(logger.WithDialogue(ctx, dialogueID), "dialogue cancelled")
	return nil
}
