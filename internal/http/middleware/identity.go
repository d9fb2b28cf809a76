package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
)

// Identity извлекает личность вызывающего из заголовков X-User-Id,
// X-User-Name и X-User-Roles (roles — через запятую) и кладёт её в контекст.
// Аутентификация выполняется выше по цепочке (гейтвеем); сервис доверяет
// заголовкам. Битый или пустой X-User-Id даёт анонимную личность — решение
// об отказе принимает политика доступа.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity models.Identity

			if raw := strings.TrimSpace(r.Header.Get("X-User-Id")); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					identity.UserID = id
				}
			}

			identity.Username = strings.TrimSpace(r.Header.Get("X-User-Name"))

			if raw := strings.TrimSpace(r.Header.Get("X-User-Roles")); raw != "" {
				for _, role := range strings.Split(raw, ",") {
					if role = strings.TrimSpace(role); role != "" {
						identity.Roles = append(identity.Roles, role)
					}
				}
			}

			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom возвращает личность из контекста (нулевая, если нет).
func IdentityFrom(ctx context.Context) models.Identity {
	identity, _ := ctx.Value(ctxIdentity).(models.Identity)
	return identity
}
