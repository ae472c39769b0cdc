package dialogue

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

// Classifier wraps the external classification collaborator with the
// local rules the state machine depends on: a mandatory timeout, a
// coercion of anything unusable to complete_answer, and the detection
// of suggestion references, which must hold even when the collaborator
// is down.
type Classifier struct {
	connector IntentClassifier
	timeout   time.Duration
	window    int
	logger    *zap.Logger
}

func NewClassifier(connector IntentClassifier, timeout time.Duration, window int, logger *zap.Logger) *Classifier {
	return &Classifier{
		connector: connector,
		timeout:   timeout,
		window:    window,
		logger:    logger,
	}
}

// Classify resolves the intent of one user utterance. It never returns
// an error: every failure mode collapses into the conservative default
// that keeps the dialogue progressing.
func (c *Classifier) Classify(ctx context.Context, draft *entity.Draft, openField, utterance string) entity.ClassificationResult {
	// Suggestion references are load-bearing for the state machine, so
	// they are detected locally before the collaborator is consulted.
	if draft.HelpOpen() && ReferencesSuggestions(utterance) {
		return entity.ClassificationResult{Intent: entity.IntentValidatesSuggestions}
	}

	req := &entity.ClassifyIntentRequest{
		Utterance:          utterance,
		OpenField:          openField,
		RecentTurns:        toTurnContexts(draft.RecentTurns(c.window)),
		OfferedSuggestions: draft.Suggestions,
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.connector.ClassifyIntent(callCtx, req)
	if err != nil {
		ctxzap.Warn(ctx, "intent classification failed, using default", zap.Error(err))
		return entity.ClassificationResult{Intent: entity.IntentCompleteAnswer, Fallback: true}
	}

	intent, ok := entity.ParseIntent(resp.Intent)
	if !ok {
		ctxzap.Warn(ctx, "classifier returned unknown label, using default", zap.String("label", resp.Intent))
		return entity.ClassificationResult{Intent: entity.IntentCompleteAnswer, Fallback: true}
	}

	// validates_suggestions only makes sense while suggestions are on
	// the table; outside that window it is a direct answer.
	if intent == entity.IntentValidatesSuggestions && !draft.HelpOpen() {
		intent = entity.IntentCompleteAnswer
	}

	return entity.ClassificationResult{Intent: intent}
}

func toTurnContexts(turns []entity.Turn) []entity.TurnContext {
	if len(turns) == 0 {
		return nil
	}
	contexts := make([]entity.TurnContext, 0, len(turns))
	for _, t := range turns {
		contexts = append(contexts, entity.TurnContext{Speaker: t.Speaker, Text: t.Text})
	}
	return contexts
}
