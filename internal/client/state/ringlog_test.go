package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

func makeEntry(id int64, ts time.Time) api.RequestLogEntry {
	return api.RequestLogEntry{
		ID:        id,
		Method:    "GET",
		Path:      fmt.Sprintf("/api/test%d", id),
		Timestamp: ts,
	}
}

// TestLogBuffer_Bounded: после 51 добавления в журнале ровно 50 записей,
// вытеснена самая старая по порядку прихода.
func TestLogBuffer_Bounded(t *testing.T) {
	buf := NewLogBuffer(50)
	base := time.Now()

	for i := 1; i <= 51; i++ {
		buf.Append(makeEntry(int64(i), base.Add(time.Duration(i)*time.Second)))
	}

	require.Equal(t, 50, buf.Len())

	entries := buf.Entries()
	// Самая свежая в голове
	assert.Equal(t, int64(51), entries[0].ID)
	// Запись с ID=1 (самая старая) вытеснена
	assert.Equal(t, int64(2), entries[len(entries)-1].ID)
}

// TestLogBuffer_NewestFirst: порядок итерации newest-first независимо
// от способа вставки.
func TestLogBuffer_NewestFirst(t *testing.T) {
	base := time.Now()

	t.Run("single appends", func(t *testing.T) {
		buf := NewLogBuffer(10)
		for i := 1; i <= 5; i++ {
			buf.Append(makeEntry(int64(i), base.Add(time.Duration(i)*time.Second)))
		}

		entries := buf.Entries()
		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i-1].Timestamp.After(entries[i].Timestamp),
				"entries must be ordered newest-first")
		}
	})

	t.Run("bulk replace oldest-first input", func(t *testing.T) {
		buf := NewLogBuffer(10)
		// Сервер возвращает oldest-first
		oldestFirst := []api.RequestLogEntry{
			makeEntry(1, base.Add(1*time.Second)),
			makeEntry(2, base.Add(2*time.Second)),
			makeEntry(3, base.Add(3*time.Second)),
		}
		buf.Replace(oldestFirst)

		entries := buf.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, int64(3), entries[0].ID)
		assert.Equal(t, int64(1), entries[2].ID)
	})

	t.Run("bulk replace newest-first input", func(t *testing.T) {
		buf := NewLogBuffer(10)
		newestFirst := []api.RequestLogEntry{
			makeEntry(3, base.Add(3*time.Second)),
			makeEntry(1, base.Add(1*time.Second)),
			makeEntry(2, base.Add(2*time.Second)),
		}
		buf.Replace(newestFirst)

		entries := buf.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, int64(3), entries[0].ID)
		assert.Equal(t, int64(1), entries[2].ID)
	})

	t.Run("equal timestamps ordered by server id", func(t *testing.T) {
		buf := NewLogBuffer(10)
		same := base
		buf.Replace([]api.RequestLogEntry{
			makeEntry(1, same),
			makeEntry(2, same),
		})

		entries := buf.Entries()
		assert.Equal(t, int64(2), entries[0].ID)
	})
}

// TestLogBuffer_ReplaceTruncates: bulk replace тоже ограничен ёмкостью.
func TestLogBuffer_ReplaceTruncates(t *testing.T) {
	buf := NewLogBuffer(3)
	base := time.Now()

	var entries []api.RequestLogEntry
	for i := 1; i <= 10; i++ {
		entries = append(entries, makeEntry(int64(i), base.Add(time.Duration(i)*time.Second)))
	}
	buf.Replace(entries)

	require.Equal(t, 3, buf.Len())
	// Остаются три самые свежие
	assert.Equal(t, int64(10), buf.Entries()[0].ID)
	assert.Equal(t, int64(8), buf.Entries()[2].ID)
}

func TestLogBuffer_Clear(t *testing.T) {
	buf := NewLogBuffer(5)
	buf.Append(makeEntry(1, time.Now()))
	require.Equal(t, 1, buf.Len())

	buf.Clear()
	assert.Equal(t, 0, buf.Len())
	assert.Empty(t, buf.Entries())
}

func TestLogBuffer_DefaultCapacity(t *testing.T) {
	buf := NewLogBuffer(0)
	base := time.Now()
	for i := 1; i <= DefaultLogCapacity+10; i++ {
		buf.Append(makeEntry(int64(i), base.Add(time.Duration(i)*time.Second)))
	}
	assert.Equal(t, DefaultLogCapacity, buf.Len())
}
