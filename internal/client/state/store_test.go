package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

func statusResponse(running bool) api.StatusResponse {
	return api.StatusResponse{
		ServerStatus: api.ServerStatus{
			IP:             "192.168.1.100",
			Port:           "29800",
			IsRunning:      running,
			CurrentProject: "default",
		},
		Endpoints: []api.Endpoint{
			{Name: "audit", Path: "/api/audit", ResponseFile: "audit.json", IsActive: true},
		},
		SendBlocks: []api.SendBlock{
			{ID: "sb-1", Name: "ping", URL: "http://example.com", Method: "GET"},
		},
	}
}

// TestStore_ApplyStatus: status_update это полная замена коллекций.
func TestStore_ApplyStatus(t *testing.T) {
	store := NewStore()

	store.ApplyStatus(statusResponse(true))

	snap := store.Snapshot()
	assert.True(t, snap.Status.IsRunning)
	assert.Equal(t, "192.168.1.100", snap.Status.IP)
	require.Len(t, snap.Endpoints, 1)
	require.Len(t, snap.SendBlocks, 1)

	// Второй status_update с пустыми коллекциями вымывает старые записи:
	// replace, не merge
	store.ApplyStatus(api.StatusResponse{
		ServerStatus: api.ServerStatus{IP: "127.0.0.1", Port: "8080"},
	})

	snap = store.Snapshot()
	assert.False(t, snap.Status.IsRunning)
	assert.Empty(t, snap.Endpoints)
	assert.Empty(t, snap.SendBlocks)
}

// TestStore_SnapshotIsolation: мутация снапшота не влияет на Store.
func TestStore_SnapshotIsolation(t *testing.T) {
	store := NewStore()
	store.ApplyStatus(statusResponse(false))

	snap := store.Snapshot()
	snap.Endpoints[0].Path = "/mutated"
	snap.SendBlocks[0].Name = "mutated"

	fresh := store.Snapshot()
	assert.Equal(t, "/api/audit", fresh.Endpoints[0].Path)
	assert.Equal(t, "ping", fresh.SendBlocks[0].Name)
}

// TestStore_ServerError: transient ошибка выставляется server_error
// и снимается следующим успешным status_update.
func TestStore_ServerError(t *testing.T) {
	store := NewStore()

	store.ApplyServerError("listen tcp :80: bind: address already in use")
	assert.Equal(t, "listen tcp :80: bind: address already in use", store.Snapshot().LastError)

	store.ApplyStatus(statusResponse(false))
	assert.Empty(t, store.Snapshot().LastError)
}

func TestStore_DismissError(t *testing.T) {
	store := NewStore()

	store.ApplyServerError("boom")
	require.NotEmpty(t, store.Snapshot().LastError)

	store.DismissError()
	assert.Empty(t, store.Snapshot().LastError)
}

// TestStore_Subscribe: слушатели получают снапшот после каждой мутации,
// в порядке подписки; отписка прекращает доставку.
func TestStore_Subscribe(t *testing.T) {
	store := NewStore()

	var order []string
	unsubA := store.Subscribe(func(snap Snapshot) {
		order = append(order, "a")
	})
	unsubB := store.Subscribe(func(snap Snapshot) {
		order = append(order, "b")
	})
	defer unsubB()

	store.ApplyStatus(statusResponse(false))
	require.Equal(t, []string{"a", "b"}, order)

	unsubA()
	order = nil

	store.ApplyServerError("x")
	assert.Equal(t, []string{"b"}, order)
}

// TestStore_Logs: new_request добавляет в голову, ReplaceLogs нормализует порядок.
func TestStore_Logs(t *testing.T) {
	store := NewStore()
	base := time.Now()

	store.ApplyLogEntry(makeEntry(1, base.Add(1*time.Second)))
	store.ApplyLogEntry(makeEntry(2, base.Add(2*time.Second)))

	snap := store.Snapshot()
	require.Len(t, snap.Logs, 2)
	assert.Equal(t, int64(2), snap.Logs[0].ID)

	// Refresh-from-pull: сервер отдаёт oldest-first
	store.ReplaceLogs([]api.RequestLogEntry{
		makeEntry(1, base.Add(1*time.Second)),
		makeEntry(2, base.Add(2*time.Second)),
		makeEntry(3, base.Add(3*time.Second)),
	})

	snap = store.Snapshot()
	require.Len(t, snap.Logs, 3)
	assert.Equal(t, int64(3), snap.Logs[0].ID)

	store.ClearLogs()
	assert.Empty(t, store.Snapshot().Logs)
}

// TestStore_Reset: переключение проекта сбрасывает всё состояние.
func TestStore_Reset(t *testing.T) {
	store := NewStore()
	store.ApplyStatus(statusResponse(true))
	store.ApplyLogEntry(makeEntry(1, time.Now()))
	store.ApplyServerError("stale")

	store.Reset()

	snap := store.Snapshot()
	assert.Equal(t, api.ServerStatus{}, snap.Status)
	assert.Empty(t, snap.Endpoints)
	assert.Empty(t, snap.SendBlocks)
	assert.Empty(t, snap.Logs)
	assert.Empty(t, snap.LastError)
}

func TestStore_SendBlockLookup(t *testing.T) {
	store := NewStore()
	store.ApplyStatus(statusResponse(false))

	sb, ok := store.SendBlock("sb-1")
	require.True(t, ok)
	assert.Equal(t, "ping", sb.Name)

	_, ok = store.SendBlock("missing")
	assert.False(t, ok)
}

func TestStore_ProjectsAndFiles(t *testing.T) {
	store := NewStore()

	store.ApplyProjects([]api.Project{{Name: "default"}, {Name: "demo"}})
	store.ApplyFiles([]string{"ok.json", "error.json"})

	snap := store.Snapshot()
	require.Len(t, snap.Projects, 2)
	assert.Equal(t, "demo", snap.Projects[1].Name)
	assert.Equal(t, []string{"ok.json", "error.json"}, snap.Files)

	// сброс при переключении проекта чистит файлы, но не список проектов
	store.Reset()

	snap = store.Snapshot()
	assert.Empty(t, snap.Files)
	assert.Len(t, snap.Projects, 2)
}
