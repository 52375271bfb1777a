package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/phanxgames/sitefx"
)

// config is read from the environment; flags override it per command.
type config struct {
	ReducedMotion  bool    `env:"SITEFX_REDUCED_MOTION" envDefault:"false"`
	DPR            float64 `env:"SITEFX_DPR"            envDefault:"1"`
	NoObserver     bool    `env:"SITEFX_NO_OBSERVER"    envDefault:"false"`
	FrameMs        int     `env:"SITEFX_FRAME_MS"       envDefault:"0"`
	ViewportWidth  float64 `env:"SITEFX_VIEWPORT_WIDTH"  envDefault:"1280"`
	ViewportHeight float64 `env:"SITEFX_VIEWPORT_HEIGHT" envDefault:"800"`
	Debug          bool    `env:"SITEFX_DEBUG"          envDefault:"false"`
}

func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func setupLogging(w io.Writer, level slog.Level) {
	sitefx.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
