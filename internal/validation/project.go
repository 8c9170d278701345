package validation

import (
	"fmt"
	"strings"
)

// MaxProjectNameLen максимальная длина имени проекта
const MaxProjectNameLen = 64

// ValidateProjectName проверяет, что имя проекта безопасно использовать
// как имя каталога на сервере: без разделителей пути и без "..".
// Сервер выполняет ту же проверку; клиентская нужна, чтобы отдать
// понятную ошибку до сетевого вызова.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if len(name) > MaxProjectNameLen {
		return fmt.Errorf("project name must not exceed %d characters", MaxProjectNameLen)
	}

	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("project name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("project name cannot contain parent directory sequences")
	}

	return nil
}

// ValidateFilename проверяет имя JSON файла по тем же правилам, что и имя проекта.
// Используется перед сохранением документа через /api/save-json.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return fmt.Errorf("illegal filename: %q", name)
	}

	return nil
}
