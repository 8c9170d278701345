package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func logEntry(id int64, method, path string, ts int64) api.RequestLogEntry {
	return api.RequestLogEntry{
		ID:        id,
		Method:    method,
		Path:      path,
		Body:      `{"checked": true}`,
		Headers:   map[string][]string{"Content-Type": {"application/json"}},
		Timestamp: time.Unix(ts, 0),
	}
}

func TestStorage_SaveAndList(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntry(ctx, "default", logEntry(1, "GET", "/ok", 100)))
	require.NoError(t, s.SaveEntry(ctx, "default", logEntry(2, "POST", "/ok", 200)))

	entries, err := s.ListRecent(ctx, "default", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// архив отдаёт записи от новых к старым
	assert.Equal(t, int64(2), entries[0].LogID)
	assert.Equal(t, "POST", entries[0].Method)
	assert.Equal(t, int64(1), entries[1].LogID)

	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, "default", entries[0].Project)
	assert.Equal(t, `{"checked": true}`, entries[0].Body)
	assert.Equal(t, []string{"application/json"}, entries[0].Headers["Content-Type"])
	assert.True(t, entries[0].ReceivedAt.Equal(time.Unix(200, 0)))
}

func TestStorage_ListRecent_Limit(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, s.SaveEntry(ctx, "default", logEntry(i, "GET", "/ok", 100+i)))
	}

	entries, err := s.ListRecent(ctx, "default", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(5), entries[0].LogID)
	assert.Equal(t, int64(3), entries[2].LogID)
}

func TestStorage_ListRecent_ProjectFilter(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntry(ctx, "alpha", logEntry(1, "GET", "/a", 100)))
	require.NoError(t, s.SaveEntry(ctx, "beta", logEntry(2, "GET", "/b", 200)))

	entries, err := s.ListRecent(ctx, "alpha", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/a", entries[0].Path)

	// пустой проект означает весь архив
	all, err := s.ListRecent(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStorage_SameTimestampOrderedByLogID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntry(ctx, "default", logEntry(1, "GET", "/first", 100)))
	require.NoError(t, s.SaveEntry(ctx, "default", logEntry(2, "GET", "/second", 100)))

	entries, err := s.ListRecent(ctx, "default", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].LogID)
}

func TestStorage_Count(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	count, err := s.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, s.SaveEntry(ctx, "alpha", logEntry(1, "GET", "/a", 100)))
	require.NoError(t, s.SaveEntry(ctx, "beta", logEntry(2, "GET", "/b", 200)))

	count, err = s.Count(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = s.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStorage_Clear(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntry(ctx, "alpha", logEntry(1, "GET", "/a", 100)))
	require.NoError(t, s.SaveEntry(ctx, "beta", logEntry(2, "GET", "/b", 200)))

	require.NoError(t, s.Clear(ctx, "alpha"))

	count, err := s.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, s.Clear(ctx, ""))

	count, err = s.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStorage_EmptyHeaders(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entry := api.RequestLogEntry{ID: 1, Method: "GET", Path: "/bare", Timestamp: time.Unix(100, 0)}
	require.NoError(t, s.SaveEntry(ctx, "default", entry))

	entries, err := s.ListRecent(ctx, "default", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Headers)
}
