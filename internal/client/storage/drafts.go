package storage

import (
	"context"
	"time"
)

//go:generate moq -out drafts_mock.go . DraftStorage

// Draft представляет несохранённый черновик редактируемой сущности.
// Черновики переживают перезапуск панели: пользовательский ввод
// не должен теряться, даже если панель закрыли посреди правки.
type Draft struct {
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего изменения черновика
	EntityKey string    `json:"entity_key"` // EntityKey ключ сущности (например "file:ok.json")
	Content   string    `json:"content"`    // Content текст черновика
	Canonical string    `json:"canonical"`  // Canonical серверная версия на момент правки
}

// DraftStorage defines interface for persisting edit-session drafts on client
type DraftStorage interface {
	// SaveDraft stores or updates a draft
	SaveDraft(ctx context.Context, draft *Draft) error

	// GetDraft retrieves a draft by entity key
	// Returns ErrDraftNotFound if draft doesn't exist
	GetDraft(ctx context.Context, entityKey string) (*Draft, error)

	// DeleteDraft removes a draft; deleting a missing draft is not an error
	DeleteDraft(ctx context.Context, entityKey string) error

	// ListDrafts returns all stored drafts
	ListDrafts(ctx context.Context) ([]*Draft, error)
}
