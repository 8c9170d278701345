package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// Entry представляет одну архивную запись журнала запросов
type Entry struct {
	ReceivedAt time.Time           // ReceivedAt момент получения запроса сервером
	ArchivedAt time.Time           // ArchivedAt момент записи в архив
	Headers    map[string][]string // Headers заголовки запроса
	ID         string              // ID локальный идентификатор записи
	Project    string              // Project проект, в котором запрос был получен
	Method     string
	Path       string
	Body       string
	LogID      int64 // LogID идентификатор записи в журнале сервера
}

// SaveEntry archives one request log entry for the given project
func (s *Storage) SaveEntry(ctx context.Context, project string, entry api.RequestLogEntry) error {
	headers, err := json.Marshal(entry.Headers)
	if err != nil {
		return fmt.Errorf("failed to marshal headers: %w", err)
	}

	query := `
		INSERT INTO request_archive (
			id, project, log_id, method, path, body, headers,
			received_at, archived_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		uuid.NewString(),
		project,
		entry.ID,
		entry.Method,
		entry.Path,
		entry.Body,
		string(headers),
		entry.Timestamp.Unix(),
		time.Now().Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert archive entry: %w", err)
	}

	return nil
}

// ListRecent returns archived entries newest-first.
// An empty project matches all projects; limit <= 0 means no limit.
func (s *Storage) ListRecent(ctx context.Context, project string, limit int) ([]*Entry, error) {
	query := `
		SELECT id, project, log_id, method, path, body, headers,
		       received_at, archived_at
		FROM request_archive
	`

	var args []any
	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}

	query += " ORDER BY received_at DESC, log_id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var entries []*Entry

	for rows.Next() {
		entry := &Entry{}
		var headers string
		var receivedAt, archivedAt int64

		err := rows.Scan(
			&entry.ID,
			&entry.Project,
			&entry.LogID,
			&entry.Method,
			&entry.Path,
			&entry.Body,
			&headers,
			&receivedAt,
			&archivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive entry: %w", err)
		}

		if err := json.Unmarshal([]byte(headers), &entry.Headers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal headers: %w", err)
		}

		entry.ReceivedAt = time.Unix(receivedAt, 0)
		entry.ArchivedAt = time.Unix(archivedAt, 0)

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// Count returns the number of archived entries for the project.
// An empty project counts all entries.
func (s *Storage) Count(ctx context.Context, project string) (int64, error) {
	query := "SELECT COUNT(*) FROM request_archive"

	var args []any
	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count archive entries: %w", err)
	}

	return count, nil
}

// Clear removes archived entries for the project.
// An empty project clears the whole archive.
func (s *Storage) Clear(ctx context.Context, project string) error {
	query := "DELETE FROM request_archive"

	var args []any
	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear archive: %w", err)
	}

	return nil
}
