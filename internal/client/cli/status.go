package cli

import (
	"context"
	"fmt"
)

// RunStatus показывает состояние сервера и его коллекции
func (c *Cli) RunStatus(ctx context.Context) error {
	status, err := c.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server status: %w", err)
	}

	c.io.Println("=== Server Status ===")
	c.io.Println()

	if status.IsRunning {
		c.io.Printf("Status:  running on %s:%s\n", status.IP, status.Port)
	} else {
		c.io.Println("Status:  stopped")
	}
	c.io.Printf("Project: %s\n", status.CurrentProject)
	c.io.Println()

	if len(status.Endpoints) == 0 {
		c.io.Println("No endpoints configured.")
	} else {
		c.io.Printf("Endpoints (%d):\n", len(status.Endpoints))
		for _, ep := range status.Endpoints {
			marker := " "
			if ep.IsActive {
				marker = "*"
			}
			c.io.Printf("  %s %-24s -> %s\n", marker, ep.Path, ep.ResponseFile)
		}
	}

	if len(status.SendBlocks) > 0 {
		c.io.Println()
		c.io.Printf("Send blocks (%d):\n", len(status.SendBlocks))
		for _, sb := range status.SendBlocks {
			c.io.Printf("  %-16s %s %s\n", sb.Name, sb.Method, sb.URL)
		}
	}

	return nil
}
