package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/JimmyBainbridge/Neptune-moons/app"
	"github.com/JimmyBainbridge/Neptune-moons/config"
)

func main() {
	configPath := flag.String("config", "neptune-moons.json", "path to the JSON config file")
	coordsPath := flag.String("coords", "", "coordinate file (JSON or CSV); overrides the config")
	labelsFlag := flag.String("labels", "", "comma-separated label names (max 5); overrides the config")
	maskPath := flag.String("mask", "", "mask output file; overrides the config")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Fall back to defaults; the error is reported once the logger exists.
		cfg = config.DefaultConfig()
	}
	if *coordsPath != "" {
		cfg.CoordsPath = *coordsPath
	}
	if *labelsFlag != "" {
		cfg.Labels = strings.Split(*labelsFlag, ",")
	}
	if *maskPath != "" {
		cfg.MaskPath = *maskPath
	}
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", slog.String("path", *configPath), slog.String("error", err.Error()))
	}

	application := app.NewApp(cfg, logger)
	if err := application.Start(); err != nil {
		logger.Error("session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
