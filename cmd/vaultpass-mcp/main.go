package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vaultpass/vaultpass-engine/internal/config"
	"github.com/vaultpass/vaultpass-engine/internal/mcptools"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

var Version = "dev"

func main() {
	// stdout carries the protocol; logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	engine := config.DefaultEngine()
	path := os.Getenv("CONFIG_FILE")
	if path != "" {
		e, err := config.LoadEngine(path)
		if err != nil {
			slog.Error("invalid engine settings", "error", err)
			os.Exit(1)
		}
		engine = e
	}

	rt, err := service.NewRuntime(engine, nil, nil)
	if err != nil {
		slog.Error("invalid engine settings", "error", err)
		os.Exit(1)
	}

	s := server.NewMCPServer("vaultpass", Version, server.WithToolCapabilities(false))
	mcptools.Register(s, service.NewGeneratorService(rt), service.NewStrengthService(rt))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if path != "" {
		go func() {
			err := config.Watch(ctx, path, func(e config.Engine) {
				if err := rt.Reload(e); err != nil {
					slog.Error("engine reload rejected", "error", err)
				}
			})
			if err != nil {
				slog.Warn("config watch disabled", "error", err)
			}
		}()
	}

	slog.Info("vaultpass MCP server ready on stdio", "version", Version)
	if err := server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		slog.Error("stdio server stopped", "error", err)
		os.Exit(1)
	}
}
