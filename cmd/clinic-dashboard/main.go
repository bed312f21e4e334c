package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dashboard "github.com/ytget/clinic-dashboard/internal/app"
	"github.com/ytget/clinic-dashboard/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	// Global flags
	verbose       bool
	directoryFile string
	latency       time.Duration
	breakpoint    float32
	language      string

	env    config.Env
	logger *zap.Logger
)

// rootCmd launches the dashboard window
var rootCmd = &cobra.Command{
	Use:     "clinic-dashboard",
	Short:   "Clinic management dashboard",
	Version: version,
	Long: `Clinic Dashboard is the staff console of a therapy clinic.

Run without arguments to open the dashboard window. Flags override the
CLINIC_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var envErr error
		env, envErr = config.LoadEnv()
		applyFlags(cmd, &env)

		var err error
		logger, err = dashboard.NewLogger(env.Verbose)
		if err != nil {
			return err
		}
		if envErr != nil {
			logger.Warn("using default configuration", zap.Error(envErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&directoryFile, "directory", "", "Staff directory YAML file (default: built-in demo accounts)")
	rootCmd.Flags().DurationVar(&latency, "latency", config.DefaultLoginLatency, "Simulated login round-trip")
	rootCmd.Flags().Float32Var(&breakpoint, "breakpoint", config.DefaultMobileBreakpoint, "Viewport width below which the layout is mobile")
	rootCmd.Flags().StringVar(&language, "language", config.DefaultLanguage, "UI language: en, pt, ru or system")

	rootCmd.AddCommand(accountsCmd)
	rootCmd.AddCommand(capabilitiesCmd)
}

// applyFlags lets explicitly set flags win over the environment
func applyFlags(cmd *cobra.Command, e *config.Env) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		e.Verbose = verbose
	}
	if flags.Changed("directory") {
		e.DirectoryFile = directoryFile
	}
	if flags.Changed("latency") && latency >= 0 {
		e.LoginLatency = latency
	}
	if flags.Changed("breakpoint") && breakpoint > 0 {
		e.MobileBreakpoint = breakpoint
	}
	if flags.Changed("language") && language != "" {
		e.Language = language
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	logger.Info("Clinic Dashboard starting", zap.String("version", version))

	a, err := dashboard.New(app.NewWithID(env.AppID), env, logger)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	a.Run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
