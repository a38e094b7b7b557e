package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "parkctl",
		Short:         "parkctl: first-come-first-served parking lot simulator",
		Long:          "parkctl allocates parking slots to arriving vehicles in arrival order, queues them when the lot is full, bills departures by the hour, and reports waiting and turnaround times.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return app.close(cmd.Context())
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(app),
		newReplayCmd(app),
	)

	return rootCmd
}
