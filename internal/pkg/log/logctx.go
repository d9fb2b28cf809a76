// Package log переносит request-scoped slog.Logger через context.
// Мидлвары requests-service обогащают логгер атрибутами запроса
// (request_id, маршрут) и кладут его в контекст через Into; нижние
// слои достают его через From, не зная о HTTP.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с привязанным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста. Если логгер не привязан
// (фоновые задачи, тесты), возвращается slog.Default().
func From(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok || l == nil {
		return slog.Default()
	}

	return l
}
