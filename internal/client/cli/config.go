package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/bluestar1997/Http-json-mock/internal/validation"
	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// RunConfigSave сохраняет конфигурацию сервера.
// Контракт сервера принимает конфигурацию только целиком, поэтому
// текущие endpoints и send blocks перечитываются и отправляются
// обратно вместе с новыми ip/port.
func (c *Cli) RunConfigSave(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "save" {
		return fmt.Errorf("missing subcommand. Usage: panel config save [--ip IP] [--port PORT]")
	}

	flags := flag.NewFlagSet("config save", flag.ContinueOnError)
	ip := flags.String("ip", "", "Server bind address")
	port := flags.String("port", "", "Server port")

	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	status, err := c.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current configuration: %w", err)
	}

	cfg := api.ConfigUpdateRequest{
		IP:         status.IP,
		Port:       status.Port,
		Endpoints:  status.Endpoints,
		SendBlocks: status.SendBlocks,
	}

	if *ip != "" {
		cfg.IP = *ip
	}
	if *port != "" {
		cfg.Port = *port
	}

	// Пути endpoint-ов нормализуются до отправки: сервер ожидает
	// ведущий слеш
	for i := range cfg.Endpoints {
		cfg.Endpoints[i].Path = validation.NormalizeEndpointPath(cfg.Endpoints[i].Path)
	}

	if err := c.api.UpdateConfig(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	c.io.Printf("Configuration saved: %s:%s, %d endpoint(s), %d send block(s).\n",
		cfg.IP, cfg.Port, len(cfg.Endpoints), len(cfg.SendBlocks))

	return nil
}
