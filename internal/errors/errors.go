// errors стандартизирует ответы об ошибках HTTP-слоя requests-service.
// На вход он принимает сервисную ошибку (сентинелы internal/service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей;
//   - для групповой валидации — массив errors с нарушениями по полям.
//
// Источник истинности по маппингу: сервисный слой (internal/service).
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/requesthub/requests-service/internal/service"
)

// FieldViolation — одно нарушение валидации в теле ответа.
type FieldViolation struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ErrorResponse — единый формат тела ошибки.
// Message — безопасное человекочитаемое описание.
// Status дублирует HTTP-статус в теле для удобства клиентов.
// Errors присутствует только у групповой валидации.
type ErrorResponse struct {
	Message string           `json:"message"`
	Status  int              `json:"status"`
	Errors  []FieldViolation `json:"errors,omitempty"`
}

// ToHTTP конвертирует сервисную ошибку в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - *service.ValidationGroupError — 400 со списком нарушений;
//   - сентинелы сервиса — по таблице ниже;
//   - прочее — 500 без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Message: "Internal error",
			Status:  http.StatusInternalServerError,
		}
	}

	var group *service.ValidationGroupError
	if errors.As(err, &group) {
		resp := ErrorResponse{
			Message: "Validation failed",
			Status:  http.StatusBadRequest,
		}
		for _, f := range group.Fields {
			resp.Errors = append(resp.Errors, FieldViolation{
				Field:    f.Field,
				Messages: f.Messages,
			})
		}

		return http.StatusBadRequest, resp
	}

	status, msg := base(err)
	return status, ErrorResponse{Message: msg, Status: status}
}

// base — базовый маппинг сервисных сентинелов -> HTTP-статус/сообщение:
//   - NotFound -> 404
//   - PermissionDenied -> 403
//   - StaleWrite (конфликт ревизий) -> 409
//   - FileSizeLimit / QuotaExceeded / ArgumentMissing / NestedReply /
//     InvalidArgument -> 400
//   - прочее -> 500/internal
func base(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "Permission denied"
	case errors.Is(err, service.ErrFileSizeLimit):
		return http.StatusBadRequest, "File size exceeds limit"
	case errors.Is(err, service.ErrQuotaExceeded):
		return http.StatusBadRequest, "Storage quota exceeded"
	case errors.Is(err, service.ErrArgumentMissing):
		return http.StatusBadRequest, "Missing required argument file_key or file_id"
	case errors.Is(err, service.ErrStaleWrite):
		return http.StatusConflict, "Conflict: stale revision"
	case errors.Is(err, service.ErrNestedReply):
		return http.StatusBadRequest, "Nested replies are not allowed"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "Invalid argument"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// WriteError — хелпер для HTTP-хендлеров: пишет статус и тело по ToHTTP.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	write(w, status, resp)
}

// Write пишет ошибку с явными статусом и сообщением (когда хендлер знает
// ресурс точнее общего маппинга, например "File not found").
func Write(w http.ResponseWriter, _ *http.Request, status int, message string) {
	write(w, status, ErrorResponse{Message: message, Status: status})
}

func write(w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
