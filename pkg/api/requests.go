package api

// ConfigUpdateRequest представляет запрос на сохранение конфигурации проекта.
// Конфигурация записывается целиком: частичные обновления полей
// контрактом сервера не поддерживаются.
type ConfigUpdateRequest struct {
	IP         string      `json:"ip"`
	Port       string      `json:"port"`
	Endpoints  []Endpoint  `json:"endpoints"`
	SendBlocks []SendBlock `json:"send_blocks"`
}

// SendRequest представляет исходящий HTTP запрос для POST /api/send.
// Headers здесь уже распарсены из текстового представления send block-а.
type SendRequest struct {
	Headers map[string]string `json:"headers"`
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Data    string            `json:"data"`
}

// SendResponse представляет результат исходящего запроса.
type SendResponse struct {
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
	Status  int               `json:"status"`
}

// SaveFileRequest представляет запрос на сохранение JSON документа.
// Сервер отклоняет запрос, если Content не является корректным JSON.
type SaveFileRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Project представляет один проект в списке GET /api/projects.
type Project struct {
	Name string `json:"name"`
}

// CreateProjectRequest представляет запрос на создание проекта.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// SwitchProjectRequest представляет запрос на переключение активного проекта.
type SwitchProjectRequest struct {
	Project string `json:"project"`
}

// MessageResponse представляет успешный ответ сервера с текстовым сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ сервера с ошибкой.
// Reason это человекочитаемый текст; клиент классифицирует его
// по подстрокам, типизированных кодов ошибок у сервера нет.
type ErrorResponse struct {
	Error string `json:"error"`
}
