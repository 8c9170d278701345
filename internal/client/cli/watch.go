package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bluestar1997/Http-json-mock/internal/client/push"
	"github.com/bluestar1997/Http-json-mock/internal/client/sync"
	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// RunWatch запускает реконсилер и push-канал и печатает живые события
// до отмены контекста. Каждая входящая запись журнала дополнительно
// складывается в локальный архив.
func (c *Cli) RunWatch(ctx context.Context, serverURL string) error {
	reconciler := sync.NewReconciler(c.api, c.store, c.log)

	// Начальная сверка: без неё панель показывала бы пустое состояние
	// до первого push-сообщения
	if err := reconciler.Reconcile(ctx); err != nil {
		return fmt.Errorf("initial reconcile failed: %w", err)
	}

	snap := c.store.Snapshot()
	c.printStatusLine(snap.Status.IsRunning, snap.Status.IP, snap.Status.Port, snap.Status.CurrentProject)
	c.io.Printf("Watching request log (%d entries so far). Ctrl+C to stop.\n", len(snap.Logs))
	c.io.Println()

	manager, err := push.NewManager(push.Config{
		URL:    serverURL,
		Logger: c.log,
		Handlers: push.Handlers{
			OnStatusUpdate: func(status api.StatusResponse) {
				c.store.ApplyStatus(status)
				c.printStatusLine(status.IsRunning, status.IP, status.Port, status.CurrentProject)
			},
			OnNewRequest: func(entry api.RequestLogEntry) {
				c.store.ApplyLogEntry(entry)
				c.printLogEntry(entry)
				c.archiveEntry(ctx, entry)
			},
			OnServerError: func(reason string) {
				c.store.ApplyServerError(reason)
				c.io.Printf("! server error: %s\n", reason)
			},
			OnConnect: func() {
				// Всё, что сервер отправил за время разрыва, потеряно:
				// перечитываем статус и журнал
				if err := reconciler.Refresh(ctx); err != nil {
					c.log.Warn("refresh after reconnect failed", "error", err)
				}
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create push manager: %w", err)
	}

	return manager.Run(ctx)
}

// printStatusLine печатает однострочную сводку статуса
func (c *Cli) printStatusLine(running bool, ip, port, project string) {
	if running {
		c.io.Printf("[%s] server running on %s:%s (project %s)\n",
			time.Now().Format("15:04:05"), ip, port, project)
	} else {
		c.io.Printf("[%s] server stopped (project %s)\n",
			time.Now().Format("15:04:05"), project)
	}
}

// printLogEntry печатает одну запись журнала запросов
func (c *Cli) printLogEntry(entry api.RequestLogEntry) {
	c.io.Printf("[%s] %s %s\n", entry.Timestamp.Format("15:04:05"), entry.Method, entry.Path)
}

// archiveEntry сохраняет запись в локальный архив, если он настроен
func (c *Cli) archiveEntry(ctx context.Context, entry api.RequestLogEntry) {
	if c.archive == nil {
		return
	}

	project := c.store.Snapshot().Status.CurrentProject
	if err := c.archive.SaveEntry(ctx, project, entry); err != nil {
		c.log.Warn("failed to archive request log entry", "error", err)
	}
}
