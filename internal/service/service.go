// service содержит бизнес-логику requests-сервиса: жизненный цикл файловых
// вложений, комментарии таймлайна с перекрёстными ссылками на файлы и
// денормализацию в поисковый индекс.
package service

import (
	"errors"
	"slices"

	"github.com/requesthub/requests-service/internal/access"
	"github.com/requesthub/requests-service/internal/config"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище (заявка/файл/комментарий).
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied — проверка прав не пройдена.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrFileSizeLimit — размер загружаемого файла превышает лимит.
	ErrFileSizeLimit = errors.New("file size limit exceeded")
	// ErrQuotaExceeded — суммарная квота бакета заявки исчерпана.
	ErrQuotaExceeded = errors.New("bucket quota exceeded")
	// ErrArgumentMissing — не передан ни file_key, ни file_id.
	ErrArgumentMissing = errors.New("argument missing")
	// ErrStaleWrite — оптимистическая конкуренция: запись устарела, конфликт
	// ретраибелен.
	ErrStaleWrite = errors.New("stale write conflict")
	// ErrNestedReply — попытка ответить на ответ (разрешён один уровень).
	ErrNestedReply = errors.New("nested reply rejected")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка (стораж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику requests-service.
type Service struct {
	requests storage.Requests
	blobs    storage.Blobs
	events   storage.Events
	index    storage.EventIndex
	policy   access.Policy
	cfg      config.Config
}

// New создает новый экземпляр Service.
func New(requests storage.Requests, blobs storage.Blobs, events storage.Events, index storage.EventIndex, policy access.Policy, cfg config.Config) *Service {
	return &Service{
		requests: requests,
		blobs:    blobs,
		events:   events,
		index:    index,
		policy:   policy,
		cfg:      cfg,
	}
}

// isAdmin — у identity есть роль полного доступа.
func isAdmin(identity models.Identity) bool {
	return slices.Contains(identity.Roles, access.RoleAdmin)
}
