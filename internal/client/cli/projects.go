package cli

import (
	"context"
	"fmt"

	"github.com/bluestar1997/Http-json-mock/internal/validation"
)

// RunProjects управляет проектами сервера
func (c *Cli) RunProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: panel projects <list|create|switch>")
	}

	switch args[0] {
	case "list":
		return c.runProjectsList(ctx)
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("missing project name. Usage: panel projects create <name>")
		}
		return c.runProjectsCreate(ctx, args[1])
	case "switch":
		if len(args) < 2 {
			return fmt.Errorf("missing project name. Usage: panel projects switch <name>")
		}
		return c.runProjectsSwitch(ctx, args[1])
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: list, create or switch", args[0])
	}
}

func (c *Cli) runProjectsList(ctx context.Context) error {
	projects, err := c.api.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	status, err := c.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server status: %w", err)
	}

	if len(projects) == 0 {
		c.io.Println("No projects found.")
		return nil
	}

	for _, p := range projects {
		marker := " "
		if p.Name == status.CurrentProject {
			marker = "*"
		}
		c.io.Printf("%s %s\n", marker, p.Name)
	}

	return nil
}

func (c *Cli) runProjectsCreate(ctx context.Context, name string) error {
	// Имя проверяем до похода на сервер: оно станет именем каталога
	if err := validation.ValidateProjectName(name); err != nil {
		return fmt.Errorf("invalid project name: %w", err)
	}

	if err := c.api.CreateProject(ctx, name); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	c.io.Printf("Project %q created.\n", name)
	return nil
}

func (c *Cli) runProjectsSwitch(ctx context.Context, name string) error {
	if err := c.api.SwitchProject(ctx, name); err != nil {
		return fmt.Errorf("failed to switch project: %w", err)
	}

	// Состояние прошлого проекта больше не имеет смысла
	c.store.Reset()

	c.io.Printf("Switched to project %q.\n", name)
	return nil
}
