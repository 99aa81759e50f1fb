package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/newspulse/pulse/pkg/log"
	"github.com/newspulse/pulse/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the News Pulse services",
	Long:  `Initializes storage, the completion provider and the HTTP API, then runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting news pulse")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("news pulse has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
