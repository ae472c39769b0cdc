package classifier

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
	config    config.ClassifierConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ClassifierConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// ClassifyIntent asks the classification service for the intent label of
// a single user utterance. The raw label is returned as-is: mapping to
// the closed intent set, including coercion of unknown labels, happens
// in the dialogue usecase.
func (c *Connector) ClassifyIntent(ctx context.Context, req *entity.ClassifyIntentRequest) (
	*entity.ClassifyIntentResponse, error,
) {
	ctxzap.Info(ctx, "classifying intent via classification service")

	var resp entity.ClassifyIntentResponse
	err := pkgRetry.Do(ctx, &c.config.Retry, func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.ClassifyEndpoint, req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("classify intent failed: %w", err)
	}

	if resp.Intent == "" {
		return nil, fmt.Errorf("invalid classification response: empty intent field")
	}

	ctxzap.Info(ctx, "intent classified", zap.String("intent", resp.Intent))

	return &resp, nil
}
