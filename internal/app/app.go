package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/constants"
	"github.com/oshokin/lcmap-client/internal/logger"
	"github.com/oshokin/lcmap-client/internal/pool"
	"github.com/oshokin/lcmap-client/internal/query"
	"github.com/oshokin/lcmap-client/internal/service/auth"
	lcmap_service "github.com/oshokin/lcmap-client/internal/service/lcmap"
	http_transport "github.com/oshokin/lcmap-client/internal/transport/http"
	"github.com/oshokin/lcmap-client/internal/utils"
	"github.com/oshokin/lcmap-client/internal/version"
)

// App holds the components shared by all commands.
type App struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the LCMAP REST client.
	client lcmap.Client
	// auth manages the session token.
	auth auth.Service
	// api is the typed API service.
	api lcmap_service.Service
	// lctx carries the credential and connection managers into requests.
	lctx *lcmap.Context
	// pools keeps one HTTP client per endpoint.
	pools *pool.Manager
	// executor runs jq expressions over command output.
	executor *query.Executor
	// registry collects request metrics. Nil when metrics are disabled.
	registry *prometheus.Registry
	// showProgress enables download progress bars.
	showProgress bool
	// stdin is read by commands taking a previous response as input.
	stdin io.Reader
	// stdout receives rendered command output.
	stdout io.Writer
}

// NewApp builds the application components from cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	clientOptions := http_transport.ClientOptions{
		UserAgentProvider: utils.NewClientAgentProvider(constants.ProductName, version.Short()),
		Timeout:           cfg.ParsedTimeout,
		MaxLogLength:      cfg.ParsedMaxLogLength,
	}

	var registry *prometheus.Registry

	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		clientOptions.Metrics = http_transport.NewMetrics(registry)
	}

	pools, err := pool.NewManager(cfg.PoolSize, func(string) *http.Client {
		return http_transport.NewClient(clientOptions)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pools: %w", err)
	}

	client := lcmap.NewClient(cfg, lcmap.NewHTTPTransport(pools.Pool(cfg.Endpoint)))

	var store auth.TokenStore
	if cfg.UseKeyring {
		store = auth.NewKeyringStore(cfg.KeyringService)
	}

	authService := auth.NewService(ctx, cfg, client, store)

	lctx := &lcmap.Context{
		CredMgr: authService,
		ConnMgr: pools,
	}

	return &App{
		cfg:          cfg,
		client:       client,
		auth:         authService,
		api:          lcmap_service.NewService(client, lctx),
		lctx:         lctx,
		pools:        pools,
		executor:     query.NewExecutor(0, 0),
		registry:     registry,
		showProgress: true,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}, nil
}

// Close reports collected metrics and releases pooled connections.
func (a *App) Close(ctx context.Context) {
	if a.registry != nil {
		reportMetrics(ctx, a.registry)
	}

	a.pools.Close()
}

// reportMetrics logs every collected request metric.
func reportMetrics(ctx context.Context, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		logger.Warnf(ctx, "Failed to gather metrics: %v", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]any, 0, 2*len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName(), label.GetValue())
			}

			switch {
			case metric.GetCounter() != nil:
				logger.InfoKV(ctx, family.GetName(), append(labels, "value", metric.GetCounter().GetValue())...)
			case metric.GetGauge() != nil:
				logger.InfoKV(ctx, family.GetName(), append(labels, "value", metric.GetGauge().GetValue())...)
			case metric.GetHistogram() != nil:
				histogram := metric.GetHistogram()
				logger.InfoKV(ctx, family.GetName(), append(labels,
					"count", histogram.GetSampleCount(),
					"sum", histogram.GetSampleSum())...)
			}
		}
	}
}
