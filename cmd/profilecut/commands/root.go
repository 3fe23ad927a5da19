package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/piwi3910/profilecut/internal/model"
	"github.com/piwi3910/profilecut/internal/project"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
	config  model.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "profilecut",
	Short: "Linear stock cutting optimizer",
	Long: `ProfileCut cuts a single demanded piece length out of profile bar
stock with minimal total waste, spreading the cuts as evenly as possible
across the available stock types.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(backupCmd)
}

func initConfig() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = model.DefaultAppConfig()
	}
	config = cfg
}

// settings returns the solve settings derived from the loaded config.
func settings() model.SolveSettings {
	s := model.DefaultSettings()
	config.ApplyToSettings(&s)
	return s
}
