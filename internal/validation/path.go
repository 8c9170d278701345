package validation

import "strings"

// NormalizeEndpointPath приводит путь endpoint-а к каноническому виду:
// путь всегда начинается с "/". Пустой ввод остаётся пустым,
// уже нормализованный путь не меняется.
func NormalizeEndpointPath(path string) string {
	if path == "" {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
