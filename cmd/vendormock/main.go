package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/mobility-gw/vehicle-gateway/internal/vendormock"
)

type mockConfig struct {
	Port     string  `koanf:"port"`
	FailRate float64 `koanf:"fail_rate"`
	Seed     int64   `koanf:"seed"`
}

func loadConfig() (*mockConfig, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(map[string]interface{}{
		"port":      "8080",
		"fail_rate": 0.3,
		"seed":      time.Now().UnixNano(),
	}, "."), nil)
	if err != nil {
		return nil, err
	}

	if path := os.Getenv("VENDORMOCK_CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	err = k.Load(env.Provider("VENDORMOCK_", ".", func(s string) string {
		return map[string]string{
			"VENDORMOCK_PORT":      "port",
			"VENDORMOCK_FAIL_RATE": "fail_rate",
			"VENDORMOCK_SEED":      "seed",
		}[s]
	}), nil)
	if err != nil {
		return nil, err
	}

	cfg := &mockConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting vendor mock", "port", cfg.Port, "fail_rate", cfg.FailRate)

	mock := vendormock.NewServer(cfg.FailRate, cfg.Seed, logger)
	mux := http.NewServeMux()
	mock.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down vendor mock...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}
