package cli

import (
	"context"
	"fmt"

	"github.com/bluestar1997/Http-json-mock/internal/client/state"
)

// RunLogs показывает журнал запросов.
// Без аргументов печатается кольцевой снапшот с сервера, --all печатает
// локальный архив целиком, --clear чистит архив.
func (c *Cli) RunLogs(ctx context.Context, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}

	switch mode {
	case "":
		return c.runLogsRing(ctx)
	case "--all":
		return c.runLogsArchive(ctx)
	case "--clear":
		return c.runLogsClear(ctx)
	default:
		return fmt.Errorf("unknown logs option: %s. Usage: panel logs [--all|--clear]", mode)
	}
}

// runLogsRing печатает серверный снапшот журнала, нормализованный
// к порядку от новых к старым
func (c *Cli) runLogsRing(ctx context.Context) error {
	entries, err := c.api.GetLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get logs: %w", err)
	}

	buf := state.NewLogBuffer(state.DefaultLogCapacity)
	buf.Replace(entries)

	normalized := buf.Entries()
	if len(normalized) == 0 {
		c.io.Println("Request log is empty.")
		return nil
	}

	c.io.Printf("Last %d request(s), newest first:\n", len(normalized))
	c.io.Println()

	for _, entry := range normalized {
		c.printLogEntry(entry)
	}

	return nil
}

// runLogsArchive печатает весь локальный архив
func (c *Cli) runLogsArchive(ctx context.Context) error {
	if c.archive == nil {
		return fmt.Errorf("request archive is not configured")
	}

	entries, err := c.archive.ListRecent(ctx, "", 0)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	if len(entries) == 0 {
		c.io.Println("Archive is empty.")
		return nil
	}

	c.io.Printf("%d archived request(s), newest first:\n", len(entries))
	c.io.Println()

	for _, entry := range entries {
		c.io.Printf("[%s] %-8s %s %s\n",
			entry.ReceivedAt.Format("2006-01-02 15:04:05"),
			entry.Project,
			entry.Method,
			entry.Path,
		)
	}

	return nil
}

// runLogsClear чистит локальный архив
func (c *Cli) runLogsClear(ctx context.Context) error {
	if c.archive == nil {
		return fmt.Errorf("request archive is not configured")
	}

	count, err := c.archive.Count(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to count archive entries: %w", err)
	}

	if err := c.archive.Clear(ctx, ""); err != nil {
		return fmt.Errorf("failed to clear archive: %w", err)
	}

	c.io.Printf("Removed %d archived request(s).\n", count)
	return nil
}
