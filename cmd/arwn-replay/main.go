package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/saaga0h/arwn-bridge/internal/replay"
	"github.com/saaga0h/arwn-bridge/pkg/config"
	"github.com/saaga0h/arwn-bridge/pkg/mqtt"
)

// arwn-replay publishes a recorded scenario of station traffic against a
// live broker: arwn-replay [flags] <scenario.yaml>
func main() {
	cfg := config.NewConfig()
	cfg.ServiceName = "arwn-replay"
	cfg.LoadFromEnv()
	cfg.LoadFromFlags()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: arwn-replay [flags] <scenario.yaml>")
		os.Exit(2)
	}
	scenarioPath := pflag.Arg(0)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	scenario, err := replay.LoadScenario(scenarioPath)
	if err != nil {
		logger.Error("Failed to load scenario", "path", scenarioPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Interrupted, stopping replay")
		cancel()
	}()

	mqttClient := mqtt.NewClient(cfg, logger)
	if err := mqttClient.Connect(ctx); err != nil {
		logger.Error("Failed to connect to MQTT", "error", err)
		os.Exit(1)
	}
	defer mqttClient.Disconnect()

	player := replay.NewPlayer(mqttClient, cfg.TopicRoot, logger)
	if err := player.Run(ctx, scenario); err != nil {
		logger.Error("Replay failed", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
