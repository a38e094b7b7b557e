package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	reportadapter "github.com/bnema/parking-lot-cli/internal/adapters/render/report"
	statusadapter "github.com/bnema/parking-lot-cli/internal/adapters/render/status"
	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/spf13/cobra"
)

type replayOutput struct {
	Lot     domain.LotConfig
	Results []application.EventResult
	Status  application.LotStatus
	Report  application.Report
}

func newReplayCmd(app *app) *cobra.Command {
	var (
		slots  int
		rate   int64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "replay <scenario.toml>",
		Short: "Replay a recorded scenario against a fresh parking lot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := application.LotOverrides{Slots: slots}
			if cmd.Flags().Changed("rate") {
				overrides.RatePerHour = &rate
			}

			scenarios, err := app.scenarios(args[0])
			if err != nil {
				return err
			}
			scenario, err := scenarios.Load(cmd.Context(), overrides)
			if err != nil {
				return err
			}

			svc, err := app.newLotService(scenario.Lot.Slots, scenario.Lot.RatePerHour)
			if err != nil {
				return err
			}

			results, err := svc.Replay(cmd.Context(), scenario.Events)
			if err != nil {
				return err
			}
			app.logger.Info("scenario replayed",
				slog.String("event", "scenario.replay"),
				slog.String("path", args[0]),
				slog.Int("events", len(results)),
			)

			status, err := svc.Status(cmd.Context())
			if err != nil {
				return err
			}
			report, err := svc.Report(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(replayOutput{
					Lot:     scenario.Lot,
					Results: results,
					Status:  status,
					Report:  report,
				})
			}

			return writeReplay(cmd, app, results, status, report)
		},
	}

	cmd.Flags().IntVar(&slots, "slots", 0, "Override the scenario's slot count")
	cmd.Flags().Int64Var(&rate, "rate", domain.DefaultRatePerHour, "Override the scenario's rate per hour")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func writeReplay(cmd *cobra.Command, app *app, results []application.EventResult, status application.LotStatus, report application.Report) error {
	out := cmd.OutOrStdout()

	for _, result := range results {
		switch {
		case result.Arrival != nil:
			writeArrival(out, *result.Arrival)
		case result.Departure != nil:
			writeDeparture(out, *result.Departure)
		default:
			writeNotFound(out, result.Event.Vehicle)
		}
	}

	rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, rendered)
	_, _ = fmt.Fprintln(out)
	_, err = fmt.Fprintln(out, app.reportRenderer(report, reportadapter.RenderOptions{}))
	return err
}
