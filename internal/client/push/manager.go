// Package push поддерживает единственное websocket-соединение с сервером
// и доставляет входящие push-сообщения подписчикам. При разрыве соединение
// восстанавливается с фиксированной задержкой, без экспоненциального
// backoff: панель общается с локальным сервером, и секунды простоя
// важнее сетевой вежливости.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

// DefaultRetryDelay is the fixed delay between reconnect attempts
const DefaultRetryDelay = 3000 * time.Millisecond

// handshakeTimeout ограничивает время установления соединения
const handshakeTimeout = 10 * time.Second

// ErrNotConnected indicates that there is no active websocket connection
var ErrNotConnected = errors.New("push channel is not connected")

// Handlers содержит обработчики входящих push-сообщений.
// Необязательные поля можно оставить nil.
type Handlers struct {
	OnStatusUpdate func(status api.StatusResponse) // OnStatusUpdate полное состояние сервера
	OnNewRequest   func(entry api.RequestLogEntry) // OnNewRequest новая запись журнала запросов
	OnServerError  func(reason string)             // OnServerError асинхронная ошибка сервера
	OnConnect      func()                          // OnConnect вызывается после каждого успешного подключения
}

// Config holds push manager configuration
type Config struct {
	URL        string        // URL базовый адрес сервера (http://host:port)
	RetryDelay time.Duration // RetryDelay задержка между попытками подключения
	Logger     *slog.Logger
	Handlers   Handlers
}

// Manager владеет websocket-соединением панели.
// Одновременно открыто не более одного соединения, и на каждый разрыв
// планируется ровно одна попытка переподключения.
type Manager struct {
	wsURL      string
	retryDelay time.Duration
	log        *slog.Logger
	handlers   Handlers
	dialer     *websocket.Dialer

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
}

// NewManager creates a push channel manager for the given server base URL
func NewManager(cfg Config) (*Manager, error) {
	wsURL, err := WebsocketURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		wsURL:      wsURL,
		retryDelay: retryDelay,
		log:        logger,
		handlers:   cfg.Handlers,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
	}, nil
}

// WebsocketURL derives the websocket endpoint from the server base URL
func WebsocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("invalid server url scheme: %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String(), nil
}

// Run connects to the server and processes push messages until the
// context is cancelled. Every connection failure or closure schedules
// exactly one reconnect after the fixed retry delay.
func (m *Manager) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.connect(ctx); err != nil {
			m.log.Warn("push channel connect failed",
				"url", m.wsURL,
				"error", err,
				"retry_in", m.retryDelay,
			)
			if err := m.wait(ctx); err != nil {
				return err
			}
			continue
		}

		m.log.Info("push channel connected", "url", m.wsURL)

		if m.handlers.OnConnect != nil {
			m.handlers.OnConnect()
		}

		err := m.readLoop(ctx)
		m.closeConn()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		m.log.Warn("push channel disconnected",
			"error", err,
			"retry_in", m.retryDelay,
		)

		if err := m.wait(ctx); err != nil {
			return err
		}
	}
}

// IsConnected reports whether the websocket connection is currently open
func (m *Manager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// connect dials the websocket endpoint and stores the connection
func (m *Manager) connect(ctx context.Context) error {
	conn, resp, err := m.dialer.DialContext(ctx, m.wsURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("failed to dial push channel (status %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("failed to dial push channel: %w", err)
	}

	m.mu.Lock()
	m.conn = conn
	m.connected = true
	m.mu.Unlock()

	return nil
}

// closeConn закрывает текущее соединение, если оно открыто
func (m *Manager) closeConn() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		closeMsg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "panel shutting down")
		_ = m.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second))
		_ = m.conn.Close()
		m.conn = nil
	}
	m.connected = false
}

// wait sleeps for the retry delay or until the context is cancelled
func (m *Manager) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.retryDelay):
		return nil
	}
}

// readLoop reads and dispatches messages until the connection breaks
func (m *Manager) readLoop(ctx context.Context) error {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	// ReadMessage не реагирует на контекст сам по себе: при отмене
	// соединение закрывается снаружи, и чтение завершается с ошибкой
	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-watchDone:
		}
	}()
	defer close(watchDone)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("push channel closed by server: %w", err)
			}
			return fmt.Errorf("failed to read push message: %w", err)
		}

		m.dispatch(raw)
	}
}

// dispatch decodes one push envelope and routes it to a handler.
// Malformed frames are logged and discarded: one bad message must not
// take down the channel.
func (m *Manager) dispatch(raw []byte) {
	var msg api.PushMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		m.log.Warn("discarding malformed push message", "error", err)
		return
	}

	switch msg.Type {
	case api.PushStatusUpdate:
		var status api.StatusResponse
		if err := json.Unmarshal(msg.Data, &status); err != nil {
			m.log.Warn("discarding malformed status_update payload", "error", err)
			return
		}
		if m.handlers.OnStatusUpdate != nil {
			m.handlers.OnStatusUpdate(status)
		}

	case api.PushNewRequest:
		var entry api.RequestLogEntry
		if err := json.Unmarshal(msg.Data, &entry); err != nil {
			m.log.Warn("discarding malformed new_request payload", "error", err)
			return
		}
		if m.handlers.OnNewRequest != nil {
			m.handlers.OnNewRequest(entry)
		}

	case api.PushServerError:
		if m.handlers.OnServerError != nil {
			m.handlers.OnServerError(msg.Error)
		}

	default:
		m.log.Warn("discarding push message of unknown type", "type", string(msg.Type))
	}
}
