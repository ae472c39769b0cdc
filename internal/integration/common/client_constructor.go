package common

import (
	"github.com/ouvrio/intake-backend/internal/config"
	pkgHTTP "github.com/ouvrio/intake-backend/pkg/http"
	"go.uber.org/zap"
)

// NewBaseConnector builds the HTTP connector shared by the collaborator
// integrations. Outbound calls are logged and authenticated with the
// collaborator's token when one is configured.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
	}
	if cfg.Token != "" {
		opts = append(opts, pkgHTTP.WithAuthToken(cfg.Token))
	}

	return pkgHTTP.NewConnector(
		&pkgHTTP.ConnectorConfig{
			Logger:  logger,
			BaseURL: cfg.Url,
		},
		opts...,
	)
}
