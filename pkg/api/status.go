package api

import "time"

// ServerStatus представляет текущее состояние mock-сервера.
// Мутируется только сервером; клиент применяет его как полную замену (replace-on-update).
type ServerStatus struct {
	IP             string `json:"ip"`              // IP адрес, на котором слушает mock-сервер
	Port           string `json:"port"`            // Port порт mock-сервера
	CurrentProject string `json:"current_project"` // CurrentProject имя активного проекта
	IsRunning      bool   `json:"is_running"`      // IsRunning запущен ли mock-сервер
}

// Endpoint представляет один настроенный endpoint mock-сервера:
// путь, привязанный файл ответа и флаг активности.
// Идентичность endpoint-а позиционная: сервер хранит упорядоченный список
// и принимает его целиком при сохранении конфигурации.
type Endpoint struct {
	Name         string `json:"name"`          // Name отображаемое имя endpoint-а
	Path         string `json:"path"`          // Path путь запроса, всегда начинается с "/"
	ResponseFile string `json:"response_file"` // ResponseFile имя JSON файла с ответом
	IsActive     bool   `json:"is_active"`     // IsActive участвует ли endpoint в маршрутизации
}

// SendBlock представляет сохранённый пресет исходящего HTTP запроса.
// Headers хранится как сырой текст: пользователь редактирует его как JSON,
// парсинг в map происходит только перед отправкой.
type SendBlock struct {
	ID       string `json:"id"`        // ID стабильный идентификатор (UUID), назначается клиентом при создании
	Name     string `json:"name"`      // Name название пресета
	URL      string `json:"url"`       // URL адрес запроса
	Method   string `json:"method"`    // Method HTTP метод (GET или POST)
	Headers  string `json:"headers"`   // Headers заголовки в виде JSON текста
	SendFile string `json:"send_file"` // SendFile имя JSON файла с телом запроса
	Data     string `json:"data"`      // Data тело запроса (используется если SendFile пуст)
}

// RequestLogEntry представляет одну запись журнала входящих запросов.
// Запись неизменяема; порядок назначается сервером по времени прихода.
type RequestLogEntry struct {
	Timestamp time.Time           `json:"timestamp"` // Timestamp время прихода запроса
	Headers   map[string][]string `json:"headers"`   // Headers заголовки запроса (имя -> значения)
	Method    string              `json:"method"`    // Method HTTP метод запроса
	Path      string              `json:"path"`      // Path путь запроса
	Body      string              `json:"body"`      // Body тело запроса как текст
	ID        int64               `json:"id"`        // ID порядковый номер, назначается сервером
}

// StatusResponse представляет ответ сервера на GET /api/status.
// Содержит статус сервера вместе с полными коллекциями endpoints и send blocks.
type StatusResponse struct {
	ServerStatus
	Endpoints  []Endpoint  `json:"endpoints"`
	SendBlocks []SendBlock `json:"send_blocks"`
}
