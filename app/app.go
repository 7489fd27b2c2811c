package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cast"

	"cosmossdk.io/log"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/keeper"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/tokens"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

const (
	// Name is the name of the application.
	Name = "hbarsign"
)

// App wires the token table, the metrics and the review keeper together.
type App struct {
	logger log.Logger

	Tokens  *tokens.Table
	Metrics *Metrics

	HbarsignKeeper keeper.Keeper
}

// New builds an App from configuration. Metrics are only collected when
// metrics.enabled is set.
func New(logger log.Logger, appOpts AppOptions) (*App, error) {
	extra, err := TokensFromOptions(appOpts)
	if err != nil {
		return nil, err
	}
	table, err := tokens.DefaultTable(extra...)
	if err != nil {
		return nil, fmt.Errorf("token table: %w", err)
	}

	app := &App{
		logger: logger,
		Tokens: table,
	}

	var observer types.ReviewObserver
	if cast.ToBool(appOpts.Get(FlagMetricsEnabled)) {
		app.Metrics = NewMetrics(prometheus.NewRegistry())
		observer = app.Metrics
	}

	app.HbarsignKeeper = keeper.NewKeeper(logger, table, observer)

	logger.Debug("app initialized", "tokens", table.Len(), "metrics", app.Metrics != nil)
	return app, nil
}

// Logger returns the application logger.
func (app *App) Logger() log.Logger {
	return app.logger
}

// Gatherer returns the metrics registry, or nil when metrics are disabled.
func (app *App) Gatherer() prometheus.Gatherer {
	if app.Metrics == nil {
		return nil
	}
	return app.Metrics.Registry
}
