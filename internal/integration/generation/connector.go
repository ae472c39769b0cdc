package generation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ouvrio/intake-backend/internal/config"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/ouvrio/intake-backend/internal/integration/common"
	pkgRetry "github.com/ouvrio/intake-backend/internal/pkg/retry"
	pkghttp "github.com/ouvrio/intake-backend/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.GeneratorConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GeneratorConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// GenerateQuestion renders a conversational question for the given field.
func (c *Connector) GenerateQuestion(ctx context.Context, req *entity.GenerateQuestionRequest) (string, error) {
	ctxzap.Info(ctx, "generating question via generation service", zap.String("field_id", req.Field.ID))

	var resp entity.GenerateTextResponse
	err := pkgRetry.Do(ctx, &c.config.Retry, func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.QuestionEndpoint, req, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("generate question failed: %w", err)
	}

	if resp.Text == "" {
		return "", fmt.Errorf("invalid generation response: empty text field")
	}

	ctxzap.Info(ctx, "question generated", zap.Int("result_length", len(resp.Text)))

	return resp.Text, nil
}

// GenerateSuggestions produces candidate values for a field the user is
// stuck on.
func (c *Connector) GenerateSuggestions(ctx context.Context, req *entity.GenerateSuggestionsRequest) ([]string, error) {
	ctxzap.Info(ctx, "generating suggestions via generation service", zap.String("field_id", req.Field.ID))

	var resp entity.GenerateSuggestionsResponse
	err := pkgRetry.Do(ctx, &c.config.Retry, func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.SuggestionsEndpoint, req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("generate suggestions failed: %w", err)
	}

	if len(resp.Suggestions) == 0 {
		return nil, fmt.Errorf("invalid generation response: empty suggestions list")
	}

	ctxzap.Info(ctx, "suggestions generated", zap.Int("count", len(resp.Suggestions)))

	return resp.Suggestions, nil
}

// GenerateAnswer answers a meta-question the user asked instead of
// providing a field value.
func (c *Connector) GenerateAnswer(ctx context.Context, req *entity.GenerateAnswerRequest) (string, error) {
	ctxzap.Info(ctx, "generating answer via generation service")

	var resp entity.GenerateTextResponse
	err := pkgRetry.Do(ctx, &c.config.Retry, func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.AnswerEndpoint, req, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("generate answer failed: %w", err)
	}

	if resp.Text == "" {
		return "", fmt.Errorf("invalid generation response: empty text field")
	}

	ctxzap.Info(ctx, "answer generated", zap.Int("result_length", len(resp.Text)))

	return resp.Text, nil
}
