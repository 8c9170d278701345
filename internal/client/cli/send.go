package cli

import (
	"context"
	"fmt"

	"github.com/bluestar1997/Http-json-mock/internal/client/session"
	"github.com/bluestar1997/Http-json-mock/internal/validation"
	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// RunSend выполняет или редактирует именованный send block
func (c *Cli) RunSend(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing send block name. Usage: panel send <name> | panel send edit <name> <path|->")
	}

	if args[0] == "edit" {
		if len(args) < 3 {
			return fmt.Errorf("missing arguments. Usage: panel send edit <name> <path|->")
		}
		return c.runSendEdit(ctx, args[1], args[2])
	}

	return c.runSendExec(ctx, args[0])
}

func (c *Cli) runSendExec(ctx context.Context, name string) error {
	status, err := c.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server status: %w", err)
	}

	block := findSendBlock(status, name)
	if block == nil {
		return fmt.Errorf("send block %q not found", name)
	}

	headers, err := validation.ParseHeaders(block.Headers)
	if err != nil {
		return fmt.Errorf("send block %q has invalid headers: %w", name, err)
	}

	// Content-Type по умолчанию, если не задан в блоке
	if _, ok := headers["Content-Type"]; !ok {
		headers["Content-Type"] = "application/json"
	}

	resp, err := c.api.Send(ctx, api.SendRequest{
		URL:     block.URL,
		Method:  block.Method,
		Headers: headers,
		Data:    block.Data,
	})
	if err != nil {
		return fmt.Errorf("send %q failed: %w", name, err)
	}

	c.io.Printf("%s %s -> %d\n", block.Method, block.URL, resp.Status)
	c.io.Println()

	for key, value := range resp.Headers {
		c.io.Printf("%s: %s\n", key, value)
	}
	if len(resp.Headers) > 0 {
		c.io.Println()
	}

	if resp.Body != "" {
		// JSON печатаем красиво, всё остальное как есть
		c.io.Println(validation.FormatJSON(resp.Body))
	}

	return nil
}

// runSendEdit правит тело send block через сессию редактирования:
// как и у файлов, черновик переживает провал сохранения и перезапуск панели.
func (c *Cli) runSendEdit(ctx context.Context, name, source string) error {
	content, err := readContent(source)
	if err != nil {
		return err
	}

	status, err := c.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server status: %w", err)
	}

	block := findSendBlock(status, name)
	if block == nil {
		return fmt.Errorf("send block %q not found", name)
	}

	key := sendBlockKey(block.ID)

	if _, err := c.tracker.Begin(ctx, key, block.Data); err != nil {
		return fmt.Errorf("failed to open edit session: %w", err)
	}

	if c.tracker.CanonicalChanged(key) {
		c.io.Printf("Warning: server version of send block %q changed while the draft was being edited.\n", name)
	}

	if err := c.tracker.SetDraft(ctx, key, content); err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	err = c.tracker.Save(ctx, key, func(ctx context.Context, content string) error {
		return c.saveSendBlockData(ctx, block.ID, content)
	})
	if err != nil {
		if c.tracker.State(key) == session.StateSaveError {
			c.io.Printf("Save failed, draft kept locally. Retry with: panel send edit %s -\n", name)
		}
		return err
	}

	c.io.Printf("Send block %q saved.\n", name)
	return nil
}

// saveSendBlockData сохраняет новое тело блока. Контракт сервера
// принимает конфигурацию только целиком, поэтому текущее состояние
// перечитывается и отправляется обратно с одним изменённым блоком.
func (c *Cli) saveSendBlockData(ctx context.Context, blockID, data string) error {
	status, err := c.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current configuration: %w", err)
	}

	found := false
	for i := range status.SendBlocks {
		if status.SendBlocks[i].ID == blockID {
			status.SendBlocks[i].Data = data
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("send block %s no longer exists on the server", blockID)
	}

	cfg := api.ConfigUpdateRequest{
		IP:         status.IP,
		Port:       status.Port,
		Endpoints:  status.Endpoints,
		SendBlocks: status.SendBlocks,
	}

	return c.api.UpdateConfig(ctx, cfg)
}

// findSendBlock ищет блок по имени в полном статусе сервера
func findSendBlock(status *api.StatusResponse, name string) *api.SendBlock {
	for i := range status.SendBlocks {
		if status.SendBlocks[i].Name == name {
			return &status.SendBlocks[i]
		}
	}
	return nil
}

// sendBlockKey строит ключ сущности для сессий редактирования блоков
func sendBlockKey(id string) string {
	return "sendblock:" + id
}
