package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	reportadapter "github.com/bnema/parking-lot-cli/internal/adapters/render/report"
	statusadapter "github.com/bnema/parking-lot-cli/internal/adapters/render/status"
	"github.com/bnema/parking-lot-cli/internal/application"
	"github.com/bnema/parking-lot-cli/internal/domain"
	"github.com/spf13/cobra"
)

const menu = `
--- Parking Lot Menu ---
1. Park a Vehicle
2. Remove a Vehicle
3. Display Parking Lot Status
4. Show Average Waiting & Turnaround Time
5. Show Timeline Chart and Summary Table
6. Exit`

type sessionOptions struct {
	slots      int
	rate       int64
	rateSet    bool
	recordPath string
}

func newSessionCmd(app *app) *cobra.Command {
	var opts sessionOptions

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run the interactive parking lot menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.rateSet = cmd.Flags().Changed("rate")
			return runSession(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.slots, "slots", 0, "Number of parking slots (prompted when unset)")
	cmd.Flags().Int64Var(&opts.rate, "rate", domain.DefaultRatePerHour, "Parking rate per hour in Rs")
	cmd.Flags().StringVar(&opts.recordPath, "record", "", "Write the session's events to a scenario file on exit")

	return cmd
}

func runSession(cmd *cobra.Command, app *app, opts sessionOptions) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	slots := opts.slots
	if slots <= 0 {
		slots = app.cfg.Lot.Slots
	}
	if slots <= 0 {
		value, err := promptNumber(reader, out, "Enter total number of parking slots: ", 1, nil)
		if err != nil {
			return fmt.Errorf("read slot count: %w", err)
		}
		slots = int(value)
	}

	rate := opts.rate
	if !opts.rateSet {
		if app.cfg.Lot.RateSet {
			rate = app.cfg.Lot.RatePerHour
		} else {
			fallback := domain.DefaultRatePerHour
			value, err := promptNumber(reader, out, fmt.Sprintf("Enter parking rate per hour (Rs) [%d]: ", fallback), 0, &fallback)
			if err != nil {
				return fmt.Errorf("read rate: %w", err)
			}
			rate = value
		}
	}

	svc, err := app.newLotService(slots, rate)
	if err != nil {
		return err
	}

	if err := sessionLoop(cmd, app, svc, reader, out); err != nil {
		return err
	}

	if opts.recordPath == "" {
		return nil
	}

	scenarios, err := app.scenarios(opts.recordPath)
	if err != nil {
		return err
	}
	if err := scenarios.Record(cmd.Context(), svc.LotConfig(), svc.Journal()); err != nil {
		return err
	}

	app.logger.Info("session recorded",
		slog.String("event", "session.record"),
		slog.String("path", opts.recordPath),
		slog.Int("events", len(svc.Journal())),
	)
	_, _ = fmt.Fprintf(out, "Session recorded to %s\n", opts.recordPath)
	return nil
}

func sessionLoop(cmd *cobra.Command, app *app, svc *application.LotService, reader *bufio.Reader, out io.Writer) error {
	ctx := cmd.Context()

	for {
		_, _ = fmt.Fprintln(out, menu)
		_, _ = fmt.Fprint(out, "Enter your choice (1-6): ")

		choice, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		switch choice {
		case "1":
			vehicle, at, ok, err := promptVehicleAndHour(reader, out, "Enter vehicle number: ", "Enter arrival time (in hours): ")
			if errors.Is(err, io.EOF) {
				_, _ = fmt.Fprintln(out)
				return nil
			}
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			outcome, err := svc.Arrive(ctx, application.ArriveCommand{Vehicle: vehicle, At: at})
			if errors.Is(err, application.ErrVehicleRequired) {
				_, _ = fmt.Fprintln(out, "Vehicle number cannot be empty.")
				continue
			}
			if err != nil {
				return err
			}
			writeArrival(out, outcome)

		case "2":
			vehicle, at, ok, err := promptVehicleAndHour(reader, out, "Enter vehicle number to remove: ", "Enter departure time (in hours): ")
			if errors.Is(err, io.EOF) {
				_, _ = fmt.Fprintln(out)
				return nil
			}
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			outcome, err := svc.Depart(ctx, application.DepartCommand{Vehicle: vehicle, At: at})
			switch {
			case errors.Is(err, domain.ErrVehicleNotFound):
				writeNotFound(out, vehicle)
				continue
			case errors.Is(err, application.ErrVehicleRequired):
				_, _ = fmt.Fprintln(out, "Vehicle number cannot be empty.")
				continue
			case err != nil:
				return err
			}
			_, _ = fmt.Fprintln(out)
			writeDeparture(out, outcome)

		case "3":
			status, err := svc.Status(ctx)
			if err != nil {
				return err
			}
			rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}
			_, _ = fmt.Fprintln(out, rendered)

		case "4":
			report, err := svc.Report(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, reportadapter.RenderAverages(report))

		case "5":
			report, err := svc.Report(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, app.reportRenderer(report, reportadapter.RenderOptions{}))

		case "6":
			_, _ = fmt.Fprintln(out, "Exiting Parking Lot System. Goodbye!")
			return nil

		default:
			_, _ = fmt.Fprintln(out, "Invalid choice! Please enter 1-6.")
		}
	}
}

// promptVehicleAndHour reports ok=false when the hour is not a whole number;
// the caller returns to the menu in that case. End of input is returned
// wrapped so the session can end cleanly.
func promptVehicleAndHour(reader *bufio.Reader, out io.Writer, vehiclePrompt, hourPrompt string) (domain.VehicleID, domain.Hour, bool, error) {
	_, _ = fmt.Fprint(out, vehiclePrompt)
	vehicle, err := readLine(reader)
	if err != nil {
		return "", 0, false, fmt.Errorf("read vehicle number: %w", err)
	}

	_, _ = fmt.Fprint(out, hourPrompt)
	raw, err := readLine(reader)
	if err != nil {
		return "", 0, false, fmt.Errorf("read time: %w", err)
	}

	hour, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		_, _ = fmt.Fprintln(out, "Invalid time! Please enter a whole number of hours.")
		return "", 0, false, nil
	}

	return domain.VehicleID(vehicle), domain.Hour(hour), true, nil
}

// promptNumber asks until it reads an integer >= minimum. An empty answer
// selects fallback when one is given.
func promptNumber(reader *bufio.Reader, out io.Writer, prompt string, minimum int64, fallback *int64) (int64, error) {
	for {
		_, _ = fmt.Fprint(out, prompt)
		raw, err := readLine(reader)
		if err != nil {
			return 0, err
		}

		if raw == "" && fallback != nil {
			return *fallback, nil
		}

		value, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && value >= minimum {
			return value, nil
		}
		_, _ = fmt.Fprintf(out, "Invalid number! Please enter a whole number of at least %d.\n", minimum)
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
