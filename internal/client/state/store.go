// Package state содержит клиентский State Store: единственный источник
// истины о состоянии mock-сервера на стороне панели. Store мутируется
// push-сообщениями и результатами pull-запросов; черновики редактирования
// в него не попадают никогда (они живут в session tracker-е до успешного
// сохранения).
package state

import (
	"sort"
	"sync"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// Snapshot представляет неизменяемый срез канонического состояния.
// Все слайсы скопированы: получатель может держать снапшот сколько угодно.
type Snapshot struct {
	Status     api.ServerStatus
	Endpoints  []api.Endpoint
	SendBlocks []api.SendBlock
	Logs       []api.RequestLogEntry
	Projects   []api.Project
	Files      []string
	LastError  string
}

// Listener получает снапшот после каждой мутации Store.
// Вызывается синхронно в порядке подписки.
type Listener func(Snapshot)

// Store является единственным изменяемым разделяемым ресурсом клиента.
type Store struct {
	mu         sync.RWMutex
	status     api.ServerStatus
	endpoints  []api.Endpoint
	sendBlocks []api.SendBlock
	logs       *LogBuffer
	projects   []api.Project
	files      []string
	lastError  string

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// NewStore создает пустой Store с журналом стандартной ёмкости.
func NewStore() *Store {
	return &Store{
		logs:      NewLogBuffer(DefaultLogCapacity),
		listeners: make(map[int]Listener),
	}
}

// Subscribe регистрирует слушателя изменений.
// Возвращает функцию отписки.
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// Snapshot возвращает копию текущего канонического состояния.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ApplyStatus применяет status_update: полная замена статуса и коллекций,
// не померджевое обновление. Успешный status_update снимает transient ошибку.
func (s *Store) ApplyStatus(resp api.StatusResponse) {
	s.mu.Lock()
	s.status = resp.ServerStatus

	s.endpoints = make([]api.Endpoint, len(resp.Endpoints))
	copy(s.endpoints, resp.Endpoints)

	s.sendBlocks = make([]api.SendBlock, len(resp.SendBlocks))
	copy(s.sendBlocks, resp.SendBlocks)

	s.lastError = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ApplyLogEntry применяет new_request: запись добавляется в голову журнала.
func (s *Store) ApplyLogEntry(entry api.RequestLogEntry) {
	s.mu.Lock()
	s.logs.Append(entry)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ApplyServerError применяет server_error: выставляет transient ошибку.
// Ошибка снимается следующим успешным status_update или явным DismissError.
func (s *Store) ApplyServerError(message string) {
	s.mu.Lock()
	s.lastError = message
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// DismissError явно снимает transient ошибку.
func (s *Store) DismissError() {
	s.mu.Lock()
	s.lastError = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ApplyProjects заменяет список известных проектов.
func (s *Store) ApplyProjects(projects []api.Project) {
	s.mu.Lock()
	s.projects = make([]api.Project, len(projects))
	copy(s.projects, projects)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ApplyFiles заменяет список JSON-файлов текущего проекта.
func (s *Store) ApplyFiles(files []string) {
	s.mu.Lock()
	s.files = make([]string, len(files))
	copy(s.files, files)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ReplaceLogs заменяет журнал снапшотом с сервера (refresh-from-pull).
func (s *Store) ReplaceLogs(entries []api.RequestLogEntry) {
	s.mu.Lock()
	s.logs.Replace(entries)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ClearLogs очищает локальный журнал.
func (s *Store) ClearLogs() {
	s.mu.Lock()
	s.logs.Clear()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Reset сбрасывает состояние текущего проекта. Используется при
// переключении проекта: это авторитетная замена, а не мердж.
// Список проектов переживает сброс, он не принадлежит одному проекту.
func (s *Store) Reset() {
	s.mu.Lock()
	s.status = api.ServerStatus{}
	s.endpoints = nil
	s.sendBlocks = nil
	s.files = nil
	s.logs.Clear()
	s.lastError = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SendBlock возвращает send block по стабильному идентификатору.
func (s *Store) SendBlock(id string) (api.SendBlock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sb := range s.sendBlocks {
		if sb.ID == id {
			return sb, true
		}
	}
	return api.SendBlock{}, false
}

// snapshotLocked собирает снапшот. Вызывается под s.mu.
func (s *Store) snapshotLocked() Snapshot {
	endpoints := make([]api.Endpoint, len(s.endpoints))
	copy(endpoints, s.endpoints)

	sendBlocks := make([]api.SendBlock, len(s.sendBlocks))
	copy(sendBlocks, s.sendBlocks)

	projects := make([]api.Project, len(s.projects))
	copy(projects, s.projects)

	files := make([]string, len(s.files))
	copy(files, s.files)

	return Snapshot{
		Status:     s.status,
		Endpoints:  endpoints,
		SendBlocks: sendBlocks,
		Logs:       s.logs.Entries(),
		Projects:   projects,
		Files:      files,
		LastError:  s.lastError,
	}
}

// notify рассылает снапшот слушателям в порядке подписки.
func (s *Store) notify(snap Snapshot) {
	s.listenersMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	// map не гарантирует порядок, а подписчики ожидают порядок регистрации
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
