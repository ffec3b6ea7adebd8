package main

import (
	"MemeBoard/internal/config"
	"MemeBoard/internal/logger"
	"MemeBoard/internal/ui"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)
	log.Info("Starting MemeBoard (%dx%d window)", cfg.WindowWidth, cfg.WindowHeight)
	ui.RunApp(cfg, log)
}
