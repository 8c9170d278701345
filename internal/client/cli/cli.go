package cli

import (
	"fmt"
	"log/slog"

	clientapi "github.com/bluestar1997/Http-json-mock/internal/client/api"
	"github.com/bluestar1997/Http-json-mock/internal/client/archive"
	"github.com/bluestar1997/Http-json-mock/internal/client/iocli"
	"github.com/bluestar1997/Http-json-mock/internal/client/session"
	"github.com/bluestar1997/Http-json-mock/internal/client/state"
)

// Cli объединяет зависимости команд панели
type Cli struct {
	api     clientapi.ClientAPI
	store   *state.Store
	tracker *session.Tracker
	archive *archive.Storage // archive может быть nil, тогда история недоступна
	io      iocli.IO
	log     *slog.Logger
}

// New creates the command front end over the collaborator client
func New(api clientapi.ClientAPI, tracker *session.Tracker, arch *archive.Storage, io iocli.IO, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cli{
		api:     api,
		store:   state.NewStore(),
		tracker: tracker,
		archive: arch,
		io:      io,
		log:     logger,
	}
}

// Store returns the state store backing the watch command
func (c *Cli) Store() *state.Store {
	return c.store
}

func PrintUsage() {
	fmt.Println("HTTP JSON Mock Panel")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  panel [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local draft database (default: panel-drafts.db)")
	fmt.Println("  --archive PATH     Path to request log archive (default: panel-archive.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  status                       Show server status, endpoints and send blocks")
	fmt.Println("  start                        Start the mock server")
	fmt.Println("  stop                         Stop the mock server")
	fmt.Println("  watch                        Follow live status and request log")
	fmt.Println("  logs [--all|--clear]         Show the request log (or the full local archive)")
	fmt.Println("  send <name>                  Run a named send block")
	fmt.Println("  send edit <name> <path|->    Edit the body of a named send block")
	fmt.Println("  projects list|create|switch  Manage projects")
	fmt.Println("  files list|get|save|discard  Manage JSON response files")
	fmt.Println("  config save                  Save ip/port configuration")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  panel status")
	fmt.Println("  panel --server http://localhost:9090 start")
	fmt.Println("  panel watch")
	fmt.Println("  panel logs --all")
	fmt.Println("  panel files save ok.json ./ok.json")
	fmt.Println("  panel projects switch demo")
	fmt.Println("  panel config save --ip 0.0.0.0 --port 8080")
}
