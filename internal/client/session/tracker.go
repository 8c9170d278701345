// Package session реализует жизненный цикл правок сущностей панели.
// Каждая редактируемая сущность (файл ответа, блок отправки, конфигурация
// сервера) проходит состояния Clean -> Editing -> Saving -> Clean/SaveError.
// Черновики изолированы от push-обновлений: входящее обновление канона
// никогда не затирает текст, который пользователь набирает прямо сейчас.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bluestar1997/Http-json-mock/internal/client/storage"
	"github.com/bluestar1997/Http-json-mock/internal/validation"
)

// Session state errors
var (
	// ErrNoSession indicates that no edit session exists for the entity
	ErrNoSession = errors.New("no edit session for entity")

	// ErrSaveInProgress indicates that a save is already running for the entity
	ErrSaveInProgress = errors.New("save already in progress")
)

// State описывает состояние сессии редактирования
type State int

// Edit session states
const (
	StateClean     State = iota // нет несохранённых правок
	StateEditing                // есть черновик, отличный от канона
	StateSaving                 // сохранение отправлено, ответа ещё нет
	StateSaveError              // сохранение не удалось, черновик сохранён
)

// String returns human-readable state name
func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	case StateSaveError:
		return "save_error"
	default:
		return "unknown"
	}
}

// SaveFunc выполняет фактическое сохранение содержимого на сервере
type SaveFunc func(ctx context.Context, content string) error

// session хранит состояние правок одной сущности
type session struct {
	state            State  // state текущее состояние
	draft            string // draft текст черновика
	canonical        string // canonical последняя известная серверная версия
	canonicalChanged bool   // canonicalChanged канон изменился во время правки
	lastError        string // lastError текст последней ошибки сохранения
}

// Tracker управляет сессиями редактирования по ключу сущности.
// Все методы безопасны для конкурентного вызова.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*session
	drafts   storage.DraftStorage // drafts может быть nil, тогда черновики не переживают перезапуск
}

// NewTracker creates a new edit session tracker.
// drafts may be nil to disable draft persistence.
func NewTracker(drafts storage.DraftStorage) *Tracker {
	return &Tracker{
		sessions: make(map[string]*session),
		drafts:   drafts,
	}
}

// Begin opens an edit session for the entity and returns the initial
// draft content. A persisted draft takes priority over the canonical
// content, so an interrupted edit can be resumed after restart.
func (t *Tracker) Begin(ctx context.Context, entityKey, canonical string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if ok && sess.state != StateClean {
		// Сессия уже открыта, продолжаем с текущим черновиком.
		// Уехавший за это время канон не затирает правку молча
		if sess.canonical != canonical {
			sess.canonical = canonical
			sess.canonicalChanged = true
		}
		return sess.draft, nil
	}

	draft := canonical
	storedCanonical := ""
	if t.drafts != nil {
		stored, err := t.drafts.GetDraft(ctx, entityKey)
		switch {
		case err == nil:
			draft = stored.Content
			storedCanonical = stored.Canonical
		case errors.Is(err, storage.ErrDraftNotFound):
			// черновика нет, начинаем с канона
		default:
			return "", fmt.Errorf("failed to load draft: %w", err)
		}
	}

	sess = &session{
		state:     StateEditing,
		draft:     draft,
		canonical: canonical,
	}

	// Восстановленный черновик помнит, какую серверную версию он правил;
	// если сервер с тех пор изменился, пользователя надо предупредить
	if storedCanonical != "" && storedCanonical != canonical {
		sess.canonicalChanged = true
	}

	t.sessions[entityKey] = sess

	return draft, nil
}

// SetDraft updates the draft content of an open session.
// The draft is written through to persistent storage.
func (t *Tracker) SetDraft(ctx context.Context, entityKey, content string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok || sess.state == StateClean {
		return ErrNoSession
	}
	if sess.state == StateSaving {
		return ErrSaveInProgress
	}

	sess.draft = content
	sess.state = StateEditing
	sess.lastError = ""

	if t.drafts != nil {
		draft := &storage.Draft{
			EntityKey: entityKey,
			Content:   content,
			Canonical: sess.canonical,
			UpdatedAt: time.Now().UTC(),
		}
		if err := t.drafts.SaveDraft(ctx, draft); err != nil {
			return fmt.Errorf("failed to persist draft: %w", err)
		}
	}

	return nil
}

// Draft returns the current draft content and whether a session exists
func (t *Tracker) Draft(entityKey string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok {
		return "", false
	}
	return sess.draft, true
}

// State returns the current session state for the entity.
// Entities without a session are Clean.
func (t *Tracker) State(entityKey string) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok {
		return StateClean
	}
	return sess.state
}

// LastError returns the message of the last failed save, if any
func (t *Tracker) LastError(entityKey string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok {
		return ""
	}
	return sess.lastError
}

// Save validates the draft and commits it through save.
// An invalid JSON draft fails fast and the session stays Editing.
// A failed save moves the session to SaveError with the draft intact,
// so no user input is ever lost. A successful save closes the session
// and removes the persisted draft.
func (t *Tracker) Save(ctx context.Context, entityKey string, save SaveFunc) error {
	t.mu.Lock()

	sess, ok := t.sessions[entityKey]
	if !ok || sess.state == StateClean {
		t.mu.Unlock()
		return ErrNoSession
	}
	if sess.state == StateSaving {
		t.mu.Unlock()
		return ErrSaveInProgress
	}

	content := sess.draft

	// Невалидный JSON не уходит на сервер вовсе
	if err := validation.ValidateJSON(content); err != nil {
		sess.state = StateEditing
		sess.lastError = err.Error()
		t.mu.Unlock()
		return fmt.Errorf("draft validation failed: %w", err)
	}

	sess.state = StateSaving
	t.mu.Unlock()

	saveErr := save(ctx, content)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Сессию могли закрыть через Discard, пока шло сохранение
	sess, ok = t.sessions[entityKey]
	if !ok {
		return saveErr
	}

	if saveErr != nil {
		sess.state = StateSaveError
		sess.lastError = saveErr.Error()
		return fmt.Errorf("failed to save %s: %w", entityKey, saveErr)
	}

	sess.canonical = content
	t.closeLocked(ctx, entityKey)

	return nil
}

// Discard drops the draft and closes the session.
// The persisted draft is removed as well.
func (t *Tracker) Discard(ctx context.Context, entityKey string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[entityKey]; !ok {
		return nil
	}

	t.closeLocked(ctx, entityKey)
	return nil
}

// SetCanonical reports a fresh server-side version of the entity.
// Clean entities simply adopt it. Open sessions keep their draft
// untouched and are marked so the user can be warned before saving.
func (t *Tracker) SetCanonical(entityKey, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok || sess.state == StateClean {
		return
	}

	if sess.canonical != content {
		sess.canonical = content
		sess.canonicalChanged = true
	}
}

// CanonicalChanged reports whether the server-side version changed
// while the edit session was open
func (t *Tracker) CanonicalChanged(entityKey string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok {
		return false
	}
	return sess.canonicalChanged
}

// Canonical returns the last known server-side content for the entity
func (t *Tracker) Canonical(entityKey string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sess, ok := t.sessions[entityKey]
	if !ok {
		return "", false
	}
	return sess.canonical, true
}

// RestoreSessions reopens edit sessions for all persisted drafts.
// Called on startup so interrupted edits show up as Editing again.
func (t *Tracker) RestoreSessions(ctx context.Context) ([]string, error) {
	if t.drafts == nil {
		return nil, nil
	}

	drafts, err := t.drafts.ListDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	keys := make([]string, 0, len(drafts))
	for _, d := range drafts {
		if sess, ok := t.sessions[d.EntityKey]; ok && sess.state != StateClean {
			continue
		}
		t.sessions[d.EntityKey] = &session{
			state:     StateEditing,
			draft:     d.Content,
			canonical: d.Canonical,
		}
		keys = append(keys, d.EntityKey)
	}

	return keys, nil
}

// closeLocked закрывает сессию и удаляет сохранённый черновик.
// Вызывается под mu.
func (t *Tracker) closeLocked(ctx context.Context, entityKey string) {
	delete(t.sessions, entityKey)

	if t.drafts != nil {
		// Ошибка удаления черновика не критична: осиротевший черновик
		// будет перезаписан при следующей правке
		_ = t.drafts.DeleteDraft(ctx, entityKey)
	}
}
