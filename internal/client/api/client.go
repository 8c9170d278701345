package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bluestar1997/Http-json-mock/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс клиента mock-сервера.
// Через него работают reconciler и CLI; в тестах подменяется moq-моком.
type ClientAPI interface {
	// GetStatus возвращает статус сервера вместе с коллекциями endpoints и send blocks
	GetStatus(ctx context.Context) (*api.StatusResponse, error)

	// StartServer запускает mock-сервер. Операция идемпотентна на стороне
	// сервера: повторный запуск возвращает ошибку с текстовой причиной.
	StartServer(ctx context.Context) error

	// StopServer останавливает mock-сервер
	StopServer(ctx context.Context) error

	// UpdateConfig сохраняет конфигурацию проекта целиком
	UpdateConfig(ctx context.Context, cfg api.ConfigUpdateRequest) error

	// GetLogs возвращает снапшот журнала запросов в порядке сервера (oldest-first)
	GetLogs(ctx context.Context) ([]api.RequestLogEntry, error)

	// Send выполняет исходящий HTTP запрос через сервер
	Send(ctx context.Context, req api.SendRequest) (*api.SendResponse, error)

	// ListFiles возвращает список имён JSON файлов текущего проекта
	ListFiles(ctx context.Context) ([]string, error)

	// GetFile возвращает содержимое JSON файла как текст
	GetFile(ctx context.Context, filename string) (string, error)

	// SaveFile сохраняет JSON документ; сервер отклоняет невалидный JSON
	SaveFile(ctx context.Context, req api.SaveFileRequest) error

	// ListProjects возвращает список проектов
	ListProjects(ctx context.Context) ([]api.Project, error)

	// CreateProject создаёт новый проект
	CreateProject(ctx context.Context, name string) error

	// SwitchProject переключает активный проект
	SwitchProject(ctx context.Context, name string) error
}

// ServerError представляет ошибку, возвращённую сервером.
// Reason это человекочитаемый текст из поля "error" ответа;
// классификация причин выполняется отдельно (internal/classify).
type ServerError struct {
	Reason     string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Reason)
}

// Client представляет HTTP клиент для взаимодействия с mock-сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetStatus возвращает текущее состояние сервера
func (c *Client) GetStatus(ctx context.Context) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/status", nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return &resp, nil
}

// StartServer запускает mock-сервер
func (c *Client) StartServer(ctx context.Context) error {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/start", nil, &resp); err != nil {
		return fmt.Errorf("start request failed: %w", err)
	}
	return nil
}

// StopServer останавливает mock-сервер
func (c *Client) StopServer(ctx context.Context) error {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/stop", nil, &resp); err != nil {
		return fmt.Errorf("stop request failed: %w", err)
	}
	return nil
}

// UpdateConfig сохраняет конфигурацию проекта целиком
func (c *Client) UpdateConfig(ctx context.Context, cfg api.ConfigUpdateRequest) error {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/config", cfg, &resp); err != nil {
		return fmt.Errorf("config update failed: %w", err)
	}
	return nil
}

// GetLogs возвращает снапшот журнала запросов
func (c *Client) GetLogs(ctx context.Context) ([]api.RequestLogEntry, error) {
	var entries []api.RequestLogEntry
	if err := c.doRequest(ctx, http.MethodGet, "/api/logs", nil, &entries); err != nil {
		return nil, fmt.Errorf("logs request failed: %w", err)
	}
	return entries, nil
}

// Send выполняет исходящий HTTP запрос через сервер
func (c *Client) Send(ctx context.Context, req api.SendRequest) (*api.SendResponse, error) {
	var resp api.SendResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/send", req, &resp); err != nil {
		return nil, fmt.Errorf("send request failed: %w", err)
	}
	return &resp, nil
}

// ListFiles возвращает список JSON файлов текущего проекта
func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	var files []string
	if err := c.doRequest(ctx, http.MethodGet, "/api/files", nil, &files); err != nil {
		return nil, fmt.Errorf("files request failed: %w", err)
	}
	return files, nil
}

// GetFile возвращает содержимое JSON файла как текст.
// Файлы раздаются сервером статически, без JSON конверта.
func (c *Client) GetFile(ctx context.Context, filename string) (string, error) {
	content, err := c.doRaw(ctx, "/json_files/"+url.PathEscape(filename))
	if err != nil {
		return "", fmt.Errorf("file request failed: %w", err)
	}
	return content, nil
}

// SaveFile сохраняет JSON документ
func (c *Client) SaveFile(ctx context.Context, req api.SaveFileRequest) error {
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/save-json", req, &resp); err != nil {
		return fmt.Errorf("save file failed: %w", err)
	}
	return nil
}

// ListProjects возвращает список проектов
func (c *Client) ListProjects(ctx context.Context) ([]api.Project, error) {
	var projects []api.Project
	if err := c.doRequest(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("projects request failed: %w", err)
	}
	return projects, nil
}

// CreateProject создаёт новый проект
func (c *Client) CreateProject(ctx context.Context, name string) error {
	req := api.CreateProjectRequest{Name: name}
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/projects", req, &resp); err != nil {
		return fmt.Errorf("create project failed: %w", err)
	}
	return nil
}

// SwitchProject переключает активный проект
func (c *Client) SwitchProject(ctx context.Context, name string) error {
	req := api.SwitchProjectRequest{Project: name}
	var resp api.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/switch-project", req, &resp); err != nil {
		return fmt.Errorf("switch project failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос с JSON телом и JSON ответом
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &ServerError{StatusCode: resp.StatusCode, Reason: errResp.Error}
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// doRaw выполняет GET запрос и возвращает тело ответа как текст
func (c *Client) doRaw(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ServerError{StatusCode: resp.StatusCode, Reason: string(respBody)}
	}

	return string(respBody), nil
}
