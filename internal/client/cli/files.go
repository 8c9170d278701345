package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	clientapi "github.com/bluestar1997/Http-json-mock/internal/client/api"
	"github.com/bluestar1997/Http-json-mock/internal/client/session"
	"github.com/bluestar1997/Http-json-mock/internal/validation"
	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// RunFiles управляет JSON файлами текущего проекта
func (c *Cli) RunFiles(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: panel files <list|get|save|discard>")
	}

	switch args[0] {
	case "list":
		return c.runFilesList(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("missing filename. Usage: panel files get <name>")
		}
		return c.runFilesGet(ctx, args[1])
	case "save":
		if len(args) < 3 {
			return fmt.Errorf("missing arguments. Usage: panel files save <name> <path|->")
		}
		return c.runFilesSave(ctx, args[1], args[2])
	case "discard":
		if len(args) < 2 {
			return fmt.Errorf("missing filename. Usage: panel files discard <name>")
		}
		return c.runFilesDiscard(ctx, args[1])
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: list, get, save or discard", args[0])
	}
}

func (c *Cli) runFilesList(ctx context.Context) error {
	files, err := c.api.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) == 0 {
		c.io.Println("No JSON files in the current project.")
		return nil
	}

	for _, name := range files {
		state := c.tracker.State(fileKey(name))
		if state != session.StateClean {
			c.io.Printf("%s  [%s]\n", name, state)
		} else {
			c.io.Println(name)
		}
	}

	return nil
}

func (c *Cli) runFilesGet(ctx context.Context, name string) error {
	content, err := c.api.GetFile(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	c.io.Println(validation.FormatJSON(content))
	return nil
}

// runFilesSave сохраняет JSON документ через сессию редактирования:
// черновик переживает провал сохранения и перезапуск панели.
func (c *Cli) runFilesSave(ctx context.Context, name, source string) error {
	if err := validation.ValidateFilename(name); err != nil {
		return fmt.Errorf("invalid filename: %w", err)
	}

	content, err := readContent(source)
	if err != nil {
		return err
	}

	canonical, err := c.canonicalFile(ctx, name)
	if err != nil {
		return err
	}

	key := fileKey(name)

	if _, err := c.tracker.Begin(ctx, key, canonical); err != nil {
		return fmt.Errorf("failed to open edit session: %w", err)
	}

	if c.tracker.CanonicalChanged(key) {
		c.io.Printf("Warning: server version of %q changed while the draft was being edited.\n", name)
	}

	if err := c.tracker.SetDraft(ctx, key, content); err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	err = c.tracker.Save(ctx, key, func(ctx context.Context, content string) error {
		return c.api.SaveFile(ctx, api.SaveFileRequest{Filename: name, Content: content})
	})
	if err != nil {
		if c.tracker.State(key) == session.StateSaveError {
			c.io.Printf("Save failed, draft kept locally. Retry with: panel files save %s -\n", name)
		}
		return err
	}

	c.io.Printf("File %q saved.\n", name)
	return nil
}

func (c *Cli) runFilesDiscard(ctx context.Context, name string) error {
	key := fileKey(name)

	if c.tracker.State(key) == session.StateClean {
		c.io.Printf("No draft for %q.\n", name)
		return nil
	}

	if err := c.tracker.Discard(ctx, key); err != nil {
		return fmt.Errorf("failed to discard draft: %w", err)
	}

	c.io.Printf("Draft for %q discarded.\n", name)
	return nil
}

// canonicalFile возвращает серверную версию файла.
// Отсутствующий файл это не ошибка: save может создавать новые файлы.
func (c *Cli) canonicalFile(ctx context.Context, name string) (string, error) {
	content, err := c.api.GetFile(ctx, name)
	if err != nil {
		var serverErr *clientapi.ServerError
		if errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to get current file content: %w", err)
	}
	return content, nil
}

// readContent читает содержимое из файла или из stdin ("-")
func readContent(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return string(data), nil
}

// fileKey строит ключ сущности для сессий редактирования файлов
func fileKey(name string) string {
	return "file:" + name
}
