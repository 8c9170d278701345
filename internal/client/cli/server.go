package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/bluestar1997/Http-json-mock/internal/client/api"
	"github.com/bluestar1997/Http-json-mock/internal/classify"
)

// RunStart запускает mock-сервер
func (c *Cli) RunStart(ctx context.Context) error {
	if err := c.api.StartServer(ctx); err != nil {
		var serverErr *clientapi.ServerError
		if errors.As(err, &serverErr) {
			// Причину отказа показываем в человекочитаемом виде
			c.io.Println(classify.Describe(serverErr.Reason))
			return fmt.Errorf("failed to start server: %w", err)
		}
		return fmt.Errorf("failed to start server: %w", err)
	}

	c.io.Println("Server started.")
	return nil
}

// RunStop останавливает mock-сервер
func (c *Cli) RunStop(ctx context.Context) error {
	if err := c.api.StopServer(ctx); err != nil {
		var serverErr *clientapi.ServerError
		if errors.As(err, &serverErr) {
			c.io.Println(serverErr.Reason)
			return fmt.Errorf("failed to stop server: %w", err)
		}
		return fmt.Errorf("failed to stop server: %w", err)
	}

	c.io.Println("Server stopped.")
	return nil
}
