// Package main implements the planner CLI tool.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-planner/config"
	pkgLog "task-planner/pkg/log"
)

var (
	cfg    *config.Config
	logger pkgLog.Logger
	loc    *time.Location
)

var rootCmd = &cobra.Command{
	Use:          "planner",
	Short:        "Personal task planner - quick-add parsing, recurrence, and slot suggestions",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger = pkgLog.Init(pkgLog.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})

		loc, err = time.LoadLocation(cfg.Planner.Timezone)
		if err != nil {
			return fmt.Errorf("loading timezone: %w", err)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nowLocal reads the wall clock in the configured planner timezone.
func nowLocal() time.Time {
	return time.Now().In(loc)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
