// cmd/hollow/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // FATAL errors before the logger is ready
	"os"

	"github.com/bethropolis/hollow/internal/app"
	"github.com/bethropolis/hollow/internal/config"
	"github.com/bethropolis/hollow/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	args := flags.ParseFlags()
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}
	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, &flags)
	if err != nil {
		stlog.Printf("Warning: %v, using defaults", err)
	}

	// --- Logger Initialization ---
	var logOutput io.Writer = io.Discard
	switch cfg.Logger.LogFilePath {
	case "":
	case "-":
		logOutput = os.Stderr
	default:
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Setup(cfg.Logger, logOutput)
	flags.ApplyOverrides(cfg, true)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if filePath != "" {
		logger.Debugf("Map path specified: %s", filePath)
	} else {
		logger.Debugf("No map specified, starting empty.")
	}

	// --- Create and Run App ---
	hollowApp, err := app.NewApp(app.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := hollowApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}
