package cmd

import (
	"fmt"
	"os"

	"router-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "router-manager",
	Short: "DHCP Reservation Manager",
	Long: `Router Manager keeps an ASUS router's DHCP reservation list safe.
It decodes the firmware's dhcp_staticlist value, serves it over HTTP,
and restores reservations the firmware lost.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format and debug level give ISO8601 timestamps, which
		// read better than epochs for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
