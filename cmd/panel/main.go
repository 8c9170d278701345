package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bluestar1997/Http-json-mock/internal/client/api"
	"github.com/bluestar1997/Http-json-mock/internal/client/archive"
	"github.com/bluestar1997/Http-json-mock/internal/client/cli"
	"github.com/bluestar1997/Http-json-mock/internal/client/iocli"
	"github.com/bluestar1997/Http-json-mock/internal/client/session"
	"github.com/bluestar1997/Http-json-mock/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "panel-drafts.db", "Path to local draft database")
	archivePath := flag.String("archive", "panel-archive.db", "Path to request log archive")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Контекст отменяется по Ctrl+C: watch работает до сигнала
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Открываем хранилище черновиков
	draftStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open draft database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := draftStorage.Close(); err != nil {
			logger.Error("failed to close draft database", "error", err)
		}
	}()

	// Открываем архив журнала запросов
	archiveStorage, err := archive.New(ctx, *archivePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open request archive: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := archiveStorage.Close(); err != nil {
			logger.Error("failed to close request archive", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	tracker := session.NewTracker(draftStorage)

	// Прерванные правки восстанавливаются из черновиков
	if _, err := tracker.RestoreSessions(ctx); err != nil {
		logger.Warn("failed to restore edit sessions", "error", err)
	}

	c := cli.New(apiClient, tracker, archiveStorage, iocli.NewStdio(), logger)

	// Выполняем команду
	switch command {
	case "status":
		if err := c.RunStatus(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "start":
		if err := c.RunStart(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "stop":
		if err := c.RunStop(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "watch":
		if err := c.RunWatch(ctx, *serverURL); err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "logs":
		if err := c.RunLogs(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "send":
		if err := c.RunSend(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "projects":
		if err := c.RunProjects(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "files":
		if err := c.RunFiles(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "config":
		if err := c.RunConfigSave(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("HTTP JSON Mock Panel\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
