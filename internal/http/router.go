package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/requesthub/requests-service/internal/http/handlers"
	"github.com/requesthub/requests-service/internal/http/middleware"
	"github.com/requesthub/requests-service/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // HTTP-метрики по шаблону роута
		middleware.Identity(),           // вынимаем X-User-Id/X-User-Roles в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// requests
	r.Post("/requests", h.CreateRequest)
	r.Get("/requests/{id}", h.GetRequest)

	// files
	r.Put("/requests/{id}/files/upload/{filename}", h.UploadFile)
	r.Get("/requests/{id}/files", h.ListFiles)
	r.Get("/requests/{id}/files/{key}/content", h.FileContent)
	r.Delete("/requests/{id}/files/{key}", h.DeleteFile)
	r.Delete("/requests/{id}/files", h.DeleteFileBySelector)

	// comments
	r.Post("/requests/{id}/comments", h.CreateComment)
	r.Put("/requests/{id}/comments/{comment_id}", h.UpdateComment)
	r.Delete("/requests/{id}/comments/{comment_id}", h.DeleteComment)
	r.Post("/requests/{id}/comments/{parent_id}/reply", h.CreateReply)
	r.Get("/requests/{id}/comments/{parent_id}/replies", h.Replies)

	// timeline
	r.Get("/requests/{id}/timeline", h.Timeline)
}
