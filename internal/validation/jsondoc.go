package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValidateJSON проверяет, что content является корректным JSON документом.
// Вызывается перед любой записью: невалидный черновик не должен
// доходить до сервера.
func ValidateJSON(content string) error {
	if content == "" {
		return fmt.Errorf("document is empty")
	}

	if !json.Valid([]byte(content)) {
		// json.Valid не возвращает позицию ошибки, поэтому для
		// сообщения пользователю делаем полноценный Unmarshal
		var v any
		if err := json.Unmarshal([]byte(content), &v); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		return fmt.Errorf("invalid JSON")
	}

	return nil
}

// ParseHeaders парсит текстовое представление заголовков send block-а.
// Допустимы значения-строки и значения-массивы строк, как в HTTP.
// Пустой текст означает отсутствие заголовков.
func ParseHeaders(raw string) (map[string]string, error) {
	headers := make(map[string]string)
	if raw == "" {
		return headers, nil
	}

	var generic map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil, fmt.Errorf("invalid headers: %w", err)
	}

	for name, value := range generic {
		switch v := value.(type) {
		case string:
			headers[name] = v
		case []any:
			// Берём первое строковое значение, как делает сервер
			// при отображении многозначных заголовков
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("invalid headers: %q has non-string value", name)
				}
				headers[name] = s
				break
			}
		default:
			return nil, fmt.Errorf("invalid headers: %q has non-string value", name)
		}
	}

	return headers, nil
}

// FormatJSON переформатирует JSON документ с отступами для отображения.
// Невалидный ввод возвращается как есть: форматирование не должно
// терять пользовательский текст.
func FormatJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(content), "", "  "); err != nil {
		return content
	}
	return buf.String()
}
