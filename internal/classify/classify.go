// Package classify относит текстовые причины отказа сервера к категориям
// для отображения. Сервер не отдаёт типизированных кодов ошибок, поэтому
// классификация работает по известным подстрокам. Это эвристика, а не
// контракт: неизвестный текст попадает в FailureOther и показывается как есть.
package classify

import "strings"

// FailureKind категория причины отказа при запуске/остановке сервера.
type FailureKind int

const (
	// FailureOther неизвестная причина, текст отображается дословно
	FailureOther FailureKind = iota
	// FailureBind не удалось занять адрес/порт
	FailureBind
	// FailurePermission не хватило прав на адрес/порт
	FailurePermission
)

// Подстроки, по которым узнаются известные причины отказа.
// Набор должен совпадать с тем, что исторически проверял control panel.
var bindPhrases = []string{
	"bind",
	"address already in use",
	"cannot assign requested address",
}

const permissionPhrase = "permission denied"

func (k FailureKind) String() string {
	switch k {
	case FailureBind:
		return "bind"
	case FailurePermission:
		return "permission"
	default:
		return "other"
	}
}

// StartFailure классифицирует причину отказа, возвращённую сервером
// при запуске или остановке.
func StartFailure(reason string) FailureKind {
	for _, phrase := range bindPhrases {
		if strings.Contains(reason, phrase) {
			return FailureBind
		}
	}

	if strings.Contains(reason, permissionPhrase) {
		return FailurePermission
	}

	return FailureOther
}

// Describe возвращает текст для отображения пользователю.
// Известные категории получают подсказку, неизвестные показываются дословно.
func Describe(reason string) string {
	switch StartFailure(reason) {
	case FailureBind:
		return "failed to bind address: check the IP address and make sure the port is free"
	case FailurePermission:
		return "permission denied: try another port or run with elevated privileges"
	default:
		return reason
	}
}
