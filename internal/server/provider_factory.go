package server

import (
	"log/slog"

	"roster-service/internal/config"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/providers"
	"roster-service/internal/providers/balldontlie"
	"roster-service/internal/providers/fixture"
)

// providerFactory assembles the catalog provider with shared wrappers.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.PlayerCatalog {
	name, base := selectProvider(cfg, f.logger)
	return providers.NewLoggingCatalog(base, name, f.logger, f.metrics)
}

// selectProvider picks the upstream catalog. The fixture provider is
// used when asked for explicitly, or when no API key is configured so
// a local run still has data to page through.
func selectProvider(cfg config.Config, logger *slog.Logger) (string, providers.PlayerCatalog) {
	switch {
	case cfg.Provider == "fixture":
		return "fixture", fixture.New()
	case cfg.Balldontlie.APIKey == "":
		logging.Warn(logger, "no API key configured, falling back to fixture catalog")
		return "fixture", fixture.New()
	default:
		return "balldontlie", balldontlie.NewClient(balldontlie.Config{
			BaseURL: cfg.Balldontlie.BaseURL,
			APIKey:  cfg.Balldontlie.APIKey,
		})
	}
}
