package api

import "encoding/json"

// PushType определяет тип push-сообщения от сервера.
// Множество типов закрытое: неизвестный тип это протокольная ошибка,
// а не молчаливый no-op.
type PushType string

const (
	// PushStatusUpdate полная замена статуса сервера и коллекций endpoints/send blocks
	PushStatusUpdate PushType = "status_update"
	// PushNewRequest новая запись журнала входящих запросов
	PushNewRequest PushType = "new_request"
	// PushServerError ошибка сервера (например, неудачный запуск)
	PushServerError PushType = "server_error"
)

// PushMessage представляет конверт push-сообщения, приходящего по websocket каналу.
// Payload зависит от Type: StatusResponse для status_update,
// RequestLogEntry для new_request, текст ошибки в поле Error для server_error.
type PushMessage struct {
	Type  PushType        `json:"type"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}
