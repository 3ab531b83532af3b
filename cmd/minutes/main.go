package main

import (
	"fmt"
	"os"

	"github.com/devbydaniel/minutes/config"
	"github.com/devbydaniel/minutes/internal/app"
	"github.com/devbydaniel/minutes/internal/cli"
	"github.com/devbydaniel/minutes/internal/logging"
	"github.com/devbydaniel/minutes/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, level, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
		Level:  level,
		Stdin:  os.Stdin,
	}

	return cli.NewRootCmd(deps).Execute()
}
