package classifier

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a keyword-driven stand-in for the classification
// service, used in local development and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// ClassifyIntent derives an intent label from simple keyword heuristics
// on the utterance. It is intentionally coarse: anything unrecognized is
// labeled complete_answer, mirroring the coercion rule downstream.
func (m *MockConnector) ClassifyIntent(ctx context.Context, req *entity.ClassifyIntentRequest) (
	*entity.ClassifyIntentResponse, error,
) {
	ctxzap.Info(ctx, "[MOCK] classifying intent")

	text := strings.ToLower(strings.TrimSpace(req.Utterance))
	intent := string(entity.IntentCompleteAnswer)

	switch {
	case containsAny(text, "je ne sais pas", "aucune idée", "je sais pas", "no idea", "i don't know"):
		intent = string(entity.IntentUncertainty)
	case containsAny(text, "aidez-moi", "aide-moi", "pouvez-vous m'aider", "help me", "je ne comprends pas"):
		intent = string(entity.IntentNeedHelp)
	case containsAny(text, "des exemples", "une suggestion", "des suggestions", "proposez", "des idées"):
		intent = string(entity.IntentSuggestionRequest)
	case strings.HasSuffix(text, "?"):
		intent = string(entity.IntentQuestionBack)
	case len(req.OfferedSuggestions) > 0 && containsAny(text, "oui", "d'accord", "exactement", "c'est ça", "parfait"):
		intent = string(entity.IntentValidatesSuggestions)
	case containsAny(text, "en fait", "plutôt", "je voulais dire", "correction"):
		intent = string(entity.IntentClarification)
	}

	ctxzap.Info(ctx, "[MOCK] intent classified", zap.String("intent", intent))

	return &entity.ClassifyIntentResponse{Intent: intent}, nil
}

func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
