package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
)

// FieldError — одна структурная ошибка валидации поля.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationGroupError — группа ошибок валидации. Запись отклоняется целиком,
// в группе накапливаются все нарушения, а не только первое.
type ValidationGroupError struct {
	Fields []FieldError
}

func (e *ValidationGroupError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, strings.Join(f.Messages, "; ")))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// validatePayload проверяет payload комментария перед записью:
//   - content обязателен и не пуст после нормализации;
//   - каждый payload.files[i].file_id обязан резолвиться в существующий
//     FileEntry этой заявки (перекрёстная проверка ссылок).
//
// Все нарушения собираются в одну группу.
func (s *Service) validatePayload(ctx context.Context, requestID uuid.UUID, payload models.EventPayload) error {
	var group ValidationGroupError

	if strings.TrimSpace(payload.Content) == "" {
		group.Fields = append(group.Fields, FieldError{
			Field:    "payload.content",
			Messages: []string{"Missing required field."},
		})
	}

	fileErrs, err := s.validateFileRefs(ctx, requestID, payload.Files)
	if err != nil {
		return err
	}
	group.Fields = append(group.Fields, fileErrs...)

	if len(group.Fields) > 0 {
		return &group
	}

	return nil
}

// validateFileRefs — перекрёстная проверка файловых ссылок: каждый
// объявленный идентификатор должен указывать на существующий файл заявки.
// Пустой список всегда валиден.
func (s *Service) validateFileRefs(ctx context.Context, requestID uuid.UUID, refs []models.FileRef) ([]FieldError, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		if id, err := uuid.Parse(strings.TrimSpace(ref.FileID)); err == nil {
			ids = append(ids, id)
		}
	}

	existing, err := s.requests.FilesByIDs(ctx, requestID, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		known[entry.ID.String()] = struct{}{}
	}

	var fields []FieldError
	for i, ref := range refs {
		if _, ok := known[canonicalFileID(ref.FileID)]; !ok {
			fields = append(fields, FieldError{
				Field:    fmt.Sprintf("payload.files[%d]", i),
				Messages: []string{fmt.Sprintf("File %s not found.", ref.FileID)},
			})
		}
	}

	return fields, nil
}

// canonicalFileID приводит ссылку к канонической форме uuid (нижний
// регистр), чтобы сверка с хранилищем не зависела от регистра записи.
// Неразборчивая ссылка возвращается как есть и совпадений не даёт.
func canonicalFileID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if id, err := uuid.Parse(trimmed); err == nil {
		return id.String()
	}

	return trimmed
}
