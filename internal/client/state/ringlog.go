package state

import (
	"sort"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// DefaultLogCapacity ёмкость журнала запросов по умолчанию
const DefaultLogCapacity = 50

// LogBuffer представляет ограниченный журнал входящих запросов.
// Записи хранятся newest-first; при переполнении вытесняется самая старая.
// Буфер не потокобезопасен сам по себе: доступ сериализует Store.
type LogBuffer struct {
	entries  []api.RequestLogEntry
	capacity int
}

// NewLogBuffer создает журнал с заданной ёмкостью.
// Неположительная ёмкость заменяется на DefaultLogCapacity.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &LogBuffer{
		capacity: capacity,
		entries:  make([]api.RequestLogEntry, 0, capacity),
	}
}

// Append вставляет запись в голову журнала (самая свежая).
// При переполнении вытесняется хвост (самая старая запись).
func (b *LogBuffer) Append(entry api.RequestLogEntry) {
	b.entries = append([]api.RequestLogEntry{entry}, b.entries...)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
}

// Replace заменяет содержимое журнала снапшотом с сервера.
// Сервер может вернуть записи в любом порядке (исторически oldest-first);
// журнал всегда нормализует порядок к newest-first.
func (b *LogBuffer) Replace(entries []api.RequestLogEntry) {
	sorted := make([]api.RequestLogEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		}
		// При равных timestamp решает порядковый номер сервера
		return sorted[i].ID > sorted[j].ID
	})

	if len(sorted) > b.capacity {
		sorted = sorted[:b.capacity]
	}
	b.entries = sorted
}

// Entries возвращает копию записей в порядке newest-first.
func (b *LogBuffer) Entries() []api.RequestLogEntry {
	out := make([]api.RequestLogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len возвращает текущее количество записей.
func (b *LogBuffer) Len() int {
	return len(b.entries)
}

// Clear очищает журнал. Локальная операция: серверная история не трогается.
func (b *LogBuffer) Clear() {
	b.entries = b.entries[:0]
}
