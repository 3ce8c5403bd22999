// Package sl содержит вспомогательные функции для структурированного
// логирования через slog. Позволяет единообразно добавлять в записи лога
// атрибуты с текстом ошибки.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом переданной ошибки.
//
// Пример:
//
//	log.Error("failed to fetch orders", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
