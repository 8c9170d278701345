package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluestar1997/Http-json-mock/internal/client/storage"
)

func newMemDrafts() *storage.DraftStorageMock {
	store := make(map[string]*storage.Draft)

	return &storage.DraftStorageMock{
		SaveDraftFunc: func(ctx context.Context, draft *storage.Draft) error {
			store[draft.EntityKey] = draft
			return nil
		},
		GetDraftFunc: func(ctx context.Context, entityKey string) (*storage.Draft, error) {
			d, ok := store[entityKey]
			if !ok {
				return nil, storage.ErrDraftNotFound
			}
			return d, nil
		},
		DeleteDraftFunc: func(ctx context.Context, entityKey string) error {
			delete(store, entityKey)
			return nil
		},
		ListDraftsFunc: func(ctx context.Context) ([]*storage.Draft, error) {
			drafts := make([]*storage.Draft, 0, len(store))
			for _, d := range store {
				drafts = append(drafts, d)
			}
			return drafts, nil
		},
	}
}

func TestTracker_BeginSeedsFromCanonical(t *testing.T) {
	tracker := NewTracker(newMemDrafts())
	ctx := context.Background()

	draft, err := tracker.Begin(ctx, "file:ok.json", `{"status": "ok"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"status": "ok"}`, draft)
	assert.Equal(t, StateEditing, tracker.State("file:ok.json"))
}

func TestTracker_BeginPrefersPersistedDraft(t *testing.T) {
	drafts := newMemDrafts()
	ctx := context.Background()

	require.NoError(t, drafts.SaveDraft(ctx, &storage.Draft{
		EntityKey: "file:ok.json",
		Content:   `{"status": "draft"}`,
	}))

	tracker := NewTracker(drafts)

	draft, err := tracker.Begin(ctx, "file:ok.json", `{"status": "ok"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"status": "draft"}`, draft)
}

func TestTracker_SetDraftPersists(t *testing.T) {
	drafts := newMemDrafts()
	tracker := NewTracker(drafts)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", "{}")
	require.NoError(t, err)

	err = tracker.SetDraft(ctx, "file:ok.json", `{"edited": true}`)
	require.NoError(t, err)

	got, ok := tracker.Draft("file:ok.json")
	require.True(t, ok)
	assert.Equal(t, `{"edited": true}`, got)

	stored, err := drafts.GetDraft(ctx, "file:ok.json")
	require.NoError(t, err)
	assert.Equal(t, `{"edited": true}`, stored.Content)
	assert.Equal(t, "{}", stored.Canonical)
}

func TestTracker_BeginMarksCanonicalDrift(t *testing.T) {
	tracker := NewTracker(nil)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", `{"v": 1}`)
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"v": 1, "edited": true}`))

	// повторный Begin с уехавшим каноном: черновик остаётся,
	// но расхождение фиксируется
	draft, err := tracker.Begin(ctx, "file:ok.json", `{"v": 2}`)
	require.NoError(t, err)
	assert.Equal(t, `{"v": 1, "edited": true}`, draft)
	assert.True(t, tracker.CanonicalChanged("file:ok.json"))

	canonical, ok := tracker.Canonical("file:ok.json")
	require.True(t, ok)
	assert.Equal(t, `{"v": 2}`, canonical)
}

func TestTracker_BeginSameCanonicalNoDrift(t *testing.T) {
	tracker := NewTracker(nil)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", `{"v": 1}`)
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"v": 1, "edited": true}`))

	_, err = tracker.Begin(ctx, "file:ok.json", `{"v": 1}`)
	require.NoError(t, err)
	assert.False(t, tracker.CanonicalChanged("file:ok.json"))
}

func TestTracker_BeginDriftFromPersistedDraft(t *testing.T) {
	drafts := newMemDrafts()
	ctx := context.Background()

	// черновик правил версию {"v": 1}, сервер с тех пор ушёл вперёд
	require.NoError(t, drafts.SaveDraft(ctx, &storage.Draft{
		EntityKey: "file:ok.json",
		Content:   `{"v": 1, "edited": true}`,
		Canonical: `{"v": 1}`,
	}))

	tracker := NewTracker(drafts)

	draft, err := tracker.Begin(ctx, "file:ok.json", `{"v": 2}`)
	require.NoError(t, err)
	assert.Equal(t, `{"v": 1, "edited": true}`, draft)
	assert.True(t, tracker.CanonicalChanged("file:ok.json"))
}

func TestTracker_SetDraftWithoutSession(t *testing.T) {
	tracker := NewTracker(nil)

	err := tracker.SetDraft(context.Background(), "file:ok.json", "{}")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestTracker_SaveSuccess(t *testing.T) {
	drafts := newMemDrafts()
	tracker := NewTracker(drafts)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", "{}")
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"saved": true}`))

	var saved string
	err = tracker.Save(ctx, "file:ok.json", func(ctx context.Context, content string) error {
		saved = content
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, `{"saved": true}`, saved)
	assert.Equal(t, StateClean, tracker.State("file:ok.json"))

	// черновик удалён после успешного сохранения
	_, err = drafts.GetDraft(ctx, "file:ok.json")
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}

func TestTracker_SaveInvalidJSON(t *testing.T) {
	tracker := NewTracker(nil)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", "{}")
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"a":}`))

	called := false
	err = tracker.Save(ctx, "file:ok.json", func(ctx context.Context, content string) error {
		called = true
		return nil
	})
	require.Error(t, err)

	// сохранение даже не вызывалось, сессия осталась в Editing
	assert.False(t, called)
	assert.Equal(t, StateEditing, tracker.State("file:ok.json"))
	assert.NotEmpty(t, tracker.LastError("file:ok.json"))

	draft, ok := tracker.Draft("file:ok.json")
	require.True(t, ok)
	assert.Equal(t, `{"a":}`, draft)
}

func TestTracker_SaveFailureKeepsDraft(t *testing.T) {
	tracker := NewTracker(newMemDrafts())
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", "{}")
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"kept": true}`))

	err = tracker.Save(ctx, "file:ok.json", func(ctx context.Context, content string) error {
		return errors.New("connection refused")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	assert.Equal(t, StateSaveError, tracker.State("file:ok.json"))
	assert.Equal(t, "connection refused", tracker.LastError("file:ok.json"))

	draft, ok := tracker.Draft("file:ok.json")
	require.True(t, ok)
	assert.Equal(t, `{"kept": true}`, draft)
}

func TestTracker_RetryAfterSaveError(t *testing.T) {
	tracker := NewTracker(newMemDrafts())
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", "{}")
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"retry": 1}`))

	err = tracker.Save(ctx, "file:ok.json", func(ctx context.Context, content string) error {
		return errors.New("temporary failure")
	})
	require.Error(t, err)
	require.Equal(t, StateSaveError, tracker.State("file:ok.json"))

	err = tracker.Save(ctx, "file:ok.json", func(ctx context.Context, content string) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateClean, tracker.State("file:ok.json"))
}

func TestTracker_Discard(t *testing.T) {
	drafts := newMemDrafts()
	tracker := NewTracker(drafts)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", "{}")
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"dropped": true}`))

	err = tracker.Discard(ctx, "file:ok.json")
	require.NoError(t, err)

	assert.Equal(t, StateClean, tracker.State("file:ok.json"))
	_, ok := tracker.Draft("file:ok.json")
	assert.False(t, ok)

	_, err = drafts.GetDraft(ctx, "file:ok.json")
	assert.ErrorIs(t, err, storage.ErrDraftNotFound)
}

func TestTracker_DiscardWithoutSession(t *testing.T) {
	tracker := NewTracker(nil)
	assert.NoError(t, tracker.Discard(context.Background(), "file:missing.json"))
}

func TestTracker_PushDoesNotTouchDraft(t *testing.T) {
	tracker := NewTracker(nil)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", `{"v": 1}`)
	require.NoError(t, err)
	require.NoError(t, tracker.SetDraft(ctx, "file:ok.json", `{"v": 1, "edited": true}`))

	// канон обновился push-сообщением во время правки
	tracker.SetCanonical("file:ok.json", `{"v": 2}`)

	draft, ok := tracker.Draft("file:ok.json")
	require.True(t, ok)
	assert.Equal(t, `{"v": 1, "edited": true}`, draft)
	assert.True(t, tracker.CanonicalChanged("file:ok.json"))

	canonical, ok := tracker.Canonical("file:ok.json")
	require.True(t, ok)
	assert.Equal(t, `{"v": 2}`, canonical)
}

func TestTracker_SetCanonicalSameContent(t *testing.T) {
	tracker := NewTracker(nil)
	ctx := context.Background()

	_, err := tracker.Begin(ctx, "file:ok.json", `{"v": 1}`)
	require.NoError(t, err)

	tracker.SetCanonical("file:ok.json", `{"v": 1}`)
	assert.False(t, tracker.CanonicalChanged("file:ok.json"))
}

func TestTracker_SetCanonicalCleanEntity(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.SetCanonical("file:ok.json", `{"v": 2}`)
	assert.Equal(t, StateClean, tracker.State("file:ok.json"))
	assert.False(t, tracker.CanonicalChanged("file:ok.json"))
}

func TestTracker_RestoreSessions(t *testing.T) {
	drafts := newMemDrafts()
	ctx := context.Background()

	require.NoError(t, drafts.SaveDraft(ctx, &storage.Draft{EntityKey: "file:a.json", Content: "{}"}))
	require.NoError(t, drafts.SaveDraft(ctx, &storage.Draft{EntityKey: "file:b.json", Content: `{"b": 1}`}))

	tracker := NewTracker(drafts)

	keys, err := tracker.RestoreSessions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"file:a.json", "file:b.json"}, keys)

	assert.Equal(t, StateEditing, tracker.State("file:a.json"))
	draft, ok := tracker.Draft("file:b.json")
	require.True(t, ok)
	assert.Equal(t, `{"b": 1}`, draft)
}

func TestTracker_RestoreSessionsNoStorage(t *testing.T) {
	tracker := NewTracker(nil)

	keys, err := tracker.RestoreSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateClean, "clean"},
		{StateEditing, "editing"},
		{StateSaving, "saving"},
		{StateSaveError, "save_error"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}
