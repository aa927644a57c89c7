package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/equity-calculator/internal/calculator"
	"github.com/iwvelando/equity-calculator/internal/config"
	"github.com/iwvelando/equity-calculator/internal/logging"
	"github.com/iwvelando/equity-calculator/internal/tui"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", "", "optional configuration file with starting inputs")
	logFile := flag.String("log-file", "", "write logs to this file (logs are discarded otherwise)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf := &config.Configuration{}
	if *configLocation != "" {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load configuration at %s: %v\n", *configLocation, err)
			os.Exit(1)
		}
		conf = loaded
	}

	// The terminal belongs to the UI, so logs only go to a file.
	logger := zap.NewNop()
	if *logFile != "" {
		conf.Logging.OutputFile = *logFile
		built, err := logging.NewLogger(conf.Logging, *logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger = built
	}
	defer func() {
		_ = logger.Sync()
	}()

	var calc *calculator.Calculator
	if *configLocation != "" {
		calc = conf.NewCalculator(logger)
	}

	program := tea.NewProgram(tui.New(logger, calc), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("terminal UI exited with error",
			zap.String("op", "main"),
			zap.Error(err),
		)
		fmt.Fprintf(os.Stderr, "equity-tui: %v\n", err)
		os.Exit(1)
	}
}
