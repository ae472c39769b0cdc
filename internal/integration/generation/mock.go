package generation

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a deterministic stand-in for the generation service,
// used in local development and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// GenerateQuestion returns the catalog prompt, prefixed with a short
// acknowledgement when the previous answer was accepted.
func (m *MockConnector) GenerateQuestion(ctx context.Context, req *entity.GenerateQuestionRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating question", zap.String("field_id", req.Field.ID))

	if req.Acknowledge != "" {
		return "Très bien, c'est noté. " + req.Field.Prompt, nil
	}

	return req.Field.Prompt, nil
}

// GenerateSuggestions returns the field's catalog examples, or generic
// placeholders when the field carries none.
func (m *MockConnector) GenerateSuggestions(ctx context.Context, req *entity.GenerateSuggestionsRequest) ([]string, error) {
	ctxzap.Info(ctx, "[MOCK] generating suggestions", zap.String("field_id", req.Field.ID))

	suggestions := req.Field.Examples
	if len(suggestions) == 0 {
		suggestions = req.Field.Options
	}
	if len(suggestions) == 0 {
		suggestions = []string{fmt.Sprintf("Exemple pour « %s »", req.Field.DisplayName)}
	}

	if req.Count > 0 && len(suggestions) > req.Count {
		suggestions = suggestions[:req.Count]
	}

	ctxzap.Info(ctx, "[MOCK] suggestions generated", zap.Int("count", len(suggestions)))

	return suggestions, nil
}

// GenerateAnswer returns a canned explanation of why the field matters.
func (m *MockConnector) GenerateAnswer(ctx context.Context, req *entity.GenerateAnswerRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating answer")

	return fmt.Sprintf(
		"Cette information (« %s ») aide les professionnels à évaluer votre projet et à vous proposer un devis précis. %s",
		req.Field.DisplayName, req.Field.Prompt,
	), nil
}
