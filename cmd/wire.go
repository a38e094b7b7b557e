package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	reportadapter "github.com/bnema/parking-lot-cli/internal/adapters/render/report"
	statusadapter "github.com/bnema/parking-lot-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/parking-lot-cli/internal/adapters/repo/toml"
	"github.com/bnema/parking-lot-cli/internal/adapters/telemetry"
	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/config"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/bnema/parking-lot-cli/internal/ports"
	"github.com/bnema/parking-lot-cli/internal/version"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	logger         *slog.Logger
	telemetry      *telemetry.Provider
	observer       ports.LotObserver
	statusRenderer func(application.LotStatus, statusadapter.RenderOptions) (string, error)
	reportRenderer func(application.Report, reportadapter.RenderOptions) string
	scenarios      func(path string) (*application.ScenarioService, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With(slog.String("run_id", runID))

	provider, err := telemetry.NewProvider(context.Background(), telemetry.Config{
		Endpoint:       cfg.Telemetry.Endpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version.Version,
		InstanceID:     runID,
	})
	if err != nil {
		return nil, fmt.Errorf("wire telemetry: %w", err)
	}

	observer, err := telemetry.NewObserver(provider)
	if err != nil {
		return nil, fmt.Errorf("wire lot observer: %w", err)
	}

	logger.Debug("parkctl started",
		slog.String("event", "app.start"),
		slog.String("version", version.Version),
		slog.Bool("telemetry_export", cfg.Telemetry.Endpoint != ""),
	)

	return &app{
		cfg:            cfg,
		logger:         logger,
		telemetry:      provider,
		observer:       observer,
		statusRenderer: statusadapter.Render,
		reportRenderer: reportadapter.Render,
		scenarios:      newScenarioService,
	}, nil
}

func newScenarioService(path string) (*application.ScenarioService, error) {
	repo, err := tomlrepo.NewRepository(path)
	if err != nil {
		return nil, fmt.Errorf("wire scenario repository: %w", err)
	}

	return application.NewScenarioService(repo), nil
}

func (a *app) newLotService(slots int, ratePerHour int64) (*application.LotService, error) {
	engine, err := domain.NewEngine(slots, ratePerHour)
	if err != nil {
		return nil, fmt.Errorf("create parking lot: %w", err)
	}

	a.logger.Debug("parking lot created",
		slog.String("event", "lot.create"),
		slog.Int("slots", slots),
		slog.Int64("rate_per_hour", ratePerHour),
	)

	return application.NewLotService(engine, a.observer, a.logger), nil
}

func (a *app) close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.telemetry.Shutdown(ctx); err != nil {
		return fmt.Errorf("flush telemetry: %w", err)
	}

	return nil
}
