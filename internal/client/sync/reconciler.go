// Package sync реализует сверку состояния панели с сервером.
// Push-канал доставляет изменения, но не историю: после запуска и после
// каждого переподключения состояние вытягивается pull-запросами, а push
// лишь поддерживает его свежим. Каждый ресурс несёт счётчик поколений,
// чтобы устаревший pull (например, начатый до переключения проекта)
// не откатил более новое состояние.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	clientapi "github.com/bluestar1997/Http-json-mock/internal/client/api"
	"github.com/bluestar1997/Http-json-mock/internal/client/state"
)

// Reconciler выполняет pull-запросы и применяет их результаты к Store.
type Reconciler struct {
	api   clientapi.ClientAPI
	store *state.Store
	log   *slog.Logger

	// Счётчики поколений по ресурсам. Применяется только результат
	// самого свежего pull-а, остальные отбрасываются.
	genProjects atomic.Uint64
	genStatus   atomic.Uint64
	genFiles    atomic.Uint64
	genLogs     atomic.Uint64
}

// NewReconciler creates a reconciler over the given collaborator client
func NewReconciler(api clientapi.ClientAPI, store *state.Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Reconciler{
		api:   api,
		store: store,
		log:   logger,
	}
}

// Reconcile performs the full startup pull sequence:
// projects, then status, then file list, then the log snapshot.
// The push channel should be attached only after Reconcile succeeds.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	if err := r.PullProjects(ctx); err != nil {
		return err
	}
	if err := r.PullStatus(ctx); err != nil {
		return err
	}
	if err := r.PullFiles(ctx); err != nil {
		return err
	}
	if err := r.PullLogs(ctx); err != nil {
		return err
	}
	return nil
}

// Refresh re-pulls status and logs. Called after the push channel
// reconnects: everything pushed while the channel was down is lost,
// so the snapshot has to be re-fetched.
func (r *Reconciler) Refresh(ctx context.Context) error {
	if err := r.PullStatus(ctx); err != nil {
		return err
	}
	if err := r.PullLogs(ctx); err != nil {
		return err
	}
	return nil
}

// SwitchProject switches the server to another project and rebuilds
// local state from scratch. In-flight pulls started before the switch
// are invalidated and their results discarded.
func (r *Reconciler) SwitchProject(ctx context.Context, name string) error {
	if err := r.api.SwitchProject(ctx, name); err != nil {
		return fmt.Errorf("failed to switch project: %w", err)
	}

	// Инвалидируем все начатые pull-ы: их результаты относятся
	// к прошлому проекту
	r.genProjects.Add(1)
	r.genStatus.Add(1)
	r.genFiles.Add(1)
	r.genLogs.Add(1)

	r.store.Reset()

	return r.Reconcile(ctx)
}

// PullProjects fetches the project list
func (r *Reconciler) PullProjects(ctx context.Context) error {
	gen := r.genProjects.Add(1)

	projects, err := r.api.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull projects: %w", err)
	}

	if r.genProjects.Load() != gen {
		r.log.Debug("discarding stale projects pull", "generation", gen)
		return nil
	}

	r.store.ApplyProjects(projects)
	return nil
}

// PullStatus fetches the full server status
func (r *Reconciler) PullStatus(ctx context.Context) error {
	gen := r.genStatus.Add(1)

	status, err := r.api.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull status: %w", err)
	}

	if r.genStatus.Load() != gen {
		r.log.Debug("discarding stale status pull", "generation", gen)
		return nil
	}

	r.store.ApplyStatus(*status)
	return nil
}

// PullFiles fetches the JSON file list of the current project
func (r *Reconciler) PullFiles(ctx context.Context) error {
	gen := r.genFiles.Add(1)

	files, err := r.api.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull file list: %w", err)
	}

	if r.genFiles.Load() != gen {
		r.log.Debug("discarding stale file list pull", "generation", gen)
		return nil
	}

	r.store.ApplyFiles(files)
	return nil
}

// PullLogs fetches the request log snapshot
func (r *Reconciler) PullLogs(ctx context.Context) error {
	gen := r.genLogs.Add(1)

	logs, err := r.api.GetLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to pull logs: %w", err)
	}

	if r.genLogs.Load() != gen {
		r.log.Debug("discarding stale logs pull", "generation", gen)
		return nil
	}

	r.store.ReplaceLogs(logs)
	return nil
}
