package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "News Pulse — personalized news with AI discussion",
	Long:  `News Pulse serves personalized headlines and lets readers discuss articles with an AI assistant.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
