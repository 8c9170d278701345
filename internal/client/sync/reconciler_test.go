package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/bluestar1997/Http-json-mock/internal/client/api"
	"github.com/bluestar1997/Http-json-mock/internal/client/state"
	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func healthyMock() *clientapi.ClientAPIMock {
	return &clientapi.ClientAPIMock{
		ListProjectsFunc: func(ctx context.Context) ([]api.Project, error) {
			return []api.Project{{Name: "default"}, {Name: "demo"}}, nil
		},
		GetStatusFunc: func(ctx context.Context) (*api.StatusResponse, error) {
			return &api.StatusResponse{
				ServerStatus: api.ServerStatus{
					IP:             "127.0.0.1",
					Port:           "8080",
					CurrentProject: "default",
					IsRunning:      true,
				},
				Endpoints: []api.Endpoint{{Name: "ok", Path: "/ok", ResponseFile: "ok.json", IsActive: true}},
			}, nil
		},
		ListFilesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"ok.json", "error.json"}, nil
		},
		GetLogsFunc: func(ctx context.Context) ([]api.RequestLogEntry, error) {
			return []api.RequestLogEntry{
				{ID: 1, Method: "GET", Path: "/ok", Timestamp: time.Unix(100, 0)},
				{ID: 2, Method: "POST", Path: "/ok", Timestamp: time.Unix(200, 0)},
			}, nil
		},
		SwitchProjectFunc: func(ctx context.Context, name string) error {
			return nil
		},
	}
}

func TestReconciler_Reconcile(t *testing.T) {
	mock := healthyMock()
	store := state.NewStore()
	r := NewReconciler(mock, store, discardLogger())

	err := r.Reconcile(context.Background())
	require.NoError(t, err)

	snap := store.Snapshot()
	assert.True(t, snap.Status.IsRunning)
	assert.Equal(t, "default", snap.Status.CurrentProject)
	assert.Len(t, snap.Projects, 2)
	assert.Equal(t, []string{"ok.json", "error.json"}, snap.Files)

	// журнал нормализован к порядку newest-first
	require.Len(t, snap.Logs, 2)
	assert.Equal(t, int64(2), snap.Logs[0].ID)
	assert.Equal(t, int64(1), snap.Logs[1].ID)

	// последовательность запуска: проекты, статус, файлы, журнал
	assert.Len(t, mock.ListProjectsCalls(), 1)
	assert.Len(t, mock.GetStatusCalls(), 1)
	assert.Len(t, mock.ListFilesCalls(), 1)
	assert.Len(t, mock.GetLogsCalls(), 1)
}

func TestReconciler_ReconcileStatusError(t *testing.T) {
	mock := healthyMock()
	mock.GetStatusFunc = func(ctx context.Context) (*api.StatusResponse, error) {
		return nil, errors.New("connection refused")
	}

	r := NewReconciler(mock, state.NewStore(), discardLogger())

	err := r.Reconcile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to pull status")

	// файлы и журнал после провала статуса не запрашиваются
	assert.Empty(t, mock.ListFilesCalls())
	assert.Empty(t, mock.GetLogsCalls())
}

func TestReconciler_Refresh(t *testing.T) {
	mock := healthyMock()
	store := state.NewStore()
	r := NewReconciler(mock, store, discardLogger())

	err := r.Refresh(context.Background())
	require.NoError(t, err)

	// refresh тянет только статус и журнал
	assert.Len(t, mock.GetStatusCalls(), 1)
	assert.Len(t, mock.GetLogsCalls(), 1)
	assert.Empty(t, mock.ListProjectsCalls())
	assert.Empty(t, mock.ListFilesCalls())
}

func TestReconciler_RefreshIdempotent(t *testing.T) {
	mock := healthyMock()
	store := state.NewStore()
	r := NewReconciler(mock, store, discardLogger())

	require.NoError(t, r.Refresh(context.Background()))
	first := store.Snapshot()

	// повторный refresh после переподключения не меняет состояние
	require.NoError(t, r.Refresh(context.Background()))
	second := store.Snapshot()

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Logs, second.Logs)
}

func TestReconciler_SwitchProject(t *testing.T) {
	mock := healthyMock()
	store := state.NewStore()

	// начальное состояние от старого проекта
	store.ApplyStatus(api.StatusResponse{
		ServerStatus: api.ServerStatus{CurrentProject: "old", IsRunning: true},
	})
	store.ApplyLogEntry(api.RequestLogEntry{ID: 99, Path: "/old"})

	r := NewReconciler(mock, store, discardLogger())

	err := r.SwitchProject(context.Background(), "demo")
	require.NoError(t, err)

	require.Len(t, mock.SwitchProjectCalls(), 1)
	assert.Equal(t, "demo", mock.SwitchProjectCalls()[0].Name)

	// состояние собрано заново, следов старого проекта нет
	snap := store.Snapshot()
	assert.Equal(t, "default", snap.Status.CurrentProject)
	for _, entry := range snap.Logs {
		assert.NotEqual(t, int64(99), entry.ID)
	}
}

func TestReconciler_SwitchProjectError(t *testing.T) {
	mock := healthyMock()
	mock.SwitchProjectFunc = func(ctx context.Context, name string) error {
		return errors.New("project not found")
	}

	store := state.NewStore()
	store.ApplyStatus(api.StatusResponse{
		ServerStatus: api.ServerStatus{CurrentProject: "old"},
	})

	r := NewReconciler(mock, store, discardLogger())

	err := r.SwitchProject(context.Background(), "missing")
	require.Error(t, err)

	// при провале переключения состояние не сбрасывается
	snap := store.Snapshot()
	assert.Equal(t, "old", snap.Status.CurrentProject)
}

func TestReconciler_StalePullDiscarded(t *testing.T) {
	mock := healthyMock()

	release := make(chan struct{})
	stale := &api.StatusResponse{
		ServerStatus: api.ServerStatus{CurrentProject: "stale"},
	}

	var calls atomic.Int32
	mock.GetStatusFunc = func(ctx context.Context) (*api.StatusResponse, error) {
		if calls.Add(1) == 1 {
			// первый pull завис и завершится после второго
			<-release
			return stale, nil
		}
		return &api.StatusResponse{
			ServerStatus: api.ServerStatus{CurrentProject: "fresh"},
		}, nil
	}

	store := state.NewStore()
	r := NewReconciler(mock, store, discardLogger())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- r.PullStatus(context.Background())
	}()

	// даём первому pull-у стартовать и забрать своё поколение
	waitFor(t, func() bool { return len(mock.GetStatusCalls()) == 1 }, "first pull never started")

	require.NoError(t, r.PullStatus(context.Background()))
	assert.Equal(t, "fresh", store.Snapshot().Status.CurrentProject)

	// отпускаем устаревший pull: его результат должен быть отброшен
	close(release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, "fresh", store.Snapshot().Status.CurrentProject)
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
