// handlers содержит REST-обработчики requests-service поверх сервисного слоя.
// Хендлеры тонкие: разбор входа, вызов сервиса, проекция ответа; весь маппинг
// ошибок централизован в internal/errors.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	apierrors "github.com/requesthub/requests-service/internal/errors"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/service"
	"github.com/requesthub/requests-service/internal/storage"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// expectedRevision читает If-Match как ожидаемую ревизию события.
// Отсутствующий заголовок отключает проверку (last-writer-wins).
func expectedRevision(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.Header.Get("If-Match"))
	if raw == "" {
		return storage.UnconditionalRevision, true
	}

	raw = strings.Trim(raw, `"`)
	rev, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || rev < 0 {
		return 0, false
	}

	return rev, true
}

// pageParams читает query-параметры page/size (нули — "не задано",
// нормализацию выполняет сервис).
func pageParams(r *http.Request) (models.PageParams, bool) {
	var params models.PageParams

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return params, false
		}
		params.Page = int32(n)
	}

	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 1 {
			return params, false
		}
		params.Size = int32(n)
	}

	return params, true
}

// requestView — проекция заявки для клиента.
type requestView struct {
	ID           uuid.UUID  `json:"id"`
	Number       int64      `json:"number"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	BucketID     *uuid.UUID `json:"bucket_id,omitempty"`
	Revision     int64      `json:"revision_id"`
	CreatedAt    time.Time  `json:"created"`
	UpdatedAt    time.Time  `json:"updated"`
	LastActivity time.Time  `json:"last_activity"`
}

func requestToView(req *models.Request) requestView {
	return requestView{
		ID:           req.ID,
		Number:       req.Number,
		Title:        req.Title,
		Status:       string(req.Status),
		CreatedBy:    req.CreatedBy,
		BucketID:     req.BucketID,
		Revision:     req.Revision,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
		LastActivity: req.LastActivityAt,
	}
}

// fileView — файловая проекция для клиента. Исходное имя файла
// отдаётся вложенным объектом metadata.
type fileView struct {
	ID        uuid.UUID        `json:"id"`
	Key       string           `json:"key"`
	Metadata  fileMetadataView `json:"metadata"`
	Size      int64            `json:"size"`
	Mimetype  string           `json:"mimetype"`
	Checksum  string           `json:"checksum"`
	CreatedAt time.Time        `json:"created"`
	Links     models.FileLinks `json:"links"`
}

type fileMetadataView struct {
	OriginalFilename string `json:"original_filename"`
}

func fileToView(entry *models.FileEntry) fileView {
	return fileView{
		ID:        entry.ID,
		Key:       entry.Key,
		Metadata:  fileMetadataView{OriginalFilename: entry.OriginalFilename},
		Size:      entry.Size,
		Mimetype:  entry.Mimetype,
		Checksum:  entry.Checksum,
		CreatedAt: entry.CreatedAt,
		Links:     service.FileLinks(entry.RequestID, entry.Key),
	}
}

// pageView — страница записей таймлайна.
type pageView struct {
	Items []models.TimelineEntry `json:"items"`
	Total int64                  `json:"total"`
}

func pageToView(page *models.EventPage) pageView {
	items := page.Items
	if items == nil {
		items = []models.TimelineEntry{}
	}

	return pageView{Items: items, Total: page.Total}
}

// requestIDParam разбирает uuid заявки из пути.
func requestIDParam(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return uuid.Nil, false
	}

	return id, true
}
