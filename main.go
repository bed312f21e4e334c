package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	dashboard "github.com/ytget/clinic-dashboard/internal/app"
	"github.com/ytget/clinic-dashboard/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := run(app.NewWithID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds and shows the dashboard. newApp creates the fyne app for an id.
func run(newApp func(id string) fyne.App) error {
	env, envErr := config.LoadEnv()

	logger, err := dashboard.NewLogger(env.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Warn("using default configuration", zap.Error(envErr))
	}
	logger.Info("Clinic Dashboard starting", zap.String("version", version))

	a, err := dashboard.New(newApp(env.AppID), env, logger)
	if err != nil {
		logger.Error("failed to build dashboard", zap.Error(err))
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	a.Run()
	return nil
}
