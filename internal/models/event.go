package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType — вариант записи таймлайна (tagged union по типу события).
type EventType string

const (
	// EventComment — пользовательский комментарий; payload.content обязателен.
	EventComment EventType = "comment"
	// EventLog — системное лог-событие; в него же "мягко" переписывается
	// удалённый комментарий.
	EventLog EventType = "log"
)

// Фиксированный payload, которым комментарий переписывается при удалении.
const (
	DeletedCommentContent = "comment was deleted"
	DeletedCommentEvent   = "comment_deleted"
)

// FileRef — ссылка комментария на файл заявки. В авторитетном хранилище
// событий хранится только идентификатор.
type FileRef struct {
	FileID string `bson:"file_id" json:"file_id"`
}

// EventPayload — содержимое события.
// Для comment: Content/Format (+опционально Files).
// Для log: Event — машинный код события (например "comment_deleted").
type EventPayload struct {
	Content string    `bson:"content,omitempty" json:"content,omitempty"`
	Format  string    `bson:"format,omitempty" json:"format,omitempty"`
	Event   string    `bson:"event,omitempty" json:"event,omitempty"`
	Files   []FileRef `bson:"files,omitempty" json:"files,omitempty"`
}

// Event — внутренняя доменная модель записи таймлайна (MongoDB).
// Важно:
//   - ID — hex ObjectID MongoDB; наружу конвертируется в string.
//   - ParentID — hex родителя; "" для корневых. Разрешён ровно один уровень
//     вложенности: parent_id может указывать только на запись с parent_id == "".
//   - Revision — независимый от заявки счётчик версий события; условные
//     обновления по revision отклоняют устаревшую запись.
//   - Удаление комментария не удаляет документ: запись переводится в EventLog
//     с фиксированным payload, сохраняя позицию и связи в таймлайне.
type Event struct {
	ID        string
	RequestID uuid.UUID
	ParentID  string
	Type      EventType
	CreatedBy uuid.UUID
	Payload   EventPayload
	Revision  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DumpedFile — файловая ссылка, обогащённая при денормализации в индекс.
// Если FileEntry к моменту дампа уже удалён, дополнительные поля опускаются,
// а file_id сохраняется.
type DumpedFile struct {
	FileID           string     `bson:"file_id" json:"file_id"`
	Key              string     `bson:"key,omitempty" json:"key,omitempty"`
	OriginalFilename string     `bson:"original_filename,omitempty" json:"original_filename,omitempty"`
	Size             int64      `bson:"size,omitempty" json:"size,omitempty"`
	Mimetype         string     `bson:"mimetype,omitempty" json:"mimetype,omitempty"`
	Created          *time.Time `bson:"created,omitempty" json:"created,omitempty"`
	Links            *FileLinks `bson:"links,omitempty" json:"links,omitempty"`
}

// DumpedPayload — payload события в поисковом документе.
type DumpedPayload struct {
	Content string       `bson:"content,omitempty" json:"content,omitempty"`
	Format  string       `bson:"format,omitempty" json:"format,omitempty"`
	Event   string       `bson:"event,omitempty" json:"event,omitempty"`
	Files   []DumpedFile `bson:"files,omitempty" json:"files,omitempty"`
}

// TimelineEntry — денормализованный поисковый документ события.
// У корневых записей Children — превью последних ответов (не более
// preview_size, новые первыми), ChildrenCount — полное число ответов,
// независимое от превью.
type TimelineEntry struct {
	ID            string          `json:"id"`
	RequestID     uuid.UUID       `json:"request_id"`
	ParentID      string          `json:"parent_id,omitempty"`
	Type          EventType       `json:"type"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	Payload       DumpedPayload   `json:"payload"`
	Revision      int64           `json:"revision_id"`
	CreatedAt     time.Time       `json:"created"`
	UpdatedAt     time.Time       `json:"updated"`
	Children      []TimelineEntry `json:"children"`
	ChildrenCount int64           `json:"children_count"`
}

// TimelineSort — порядок корневых записей таймлайна.
type TimelineSort string

const (
	SortNewest TimelineSort = "newest"
	SortOldest TimelineSort = "oldest"
)

// PageParams — постраничная выдача page/size (нумерация страниц с 1).
type PageParams struct {
	Page int32
	Size int32
}

// EventPage — страница записей таймлайна.
type EventPage struct {
	Items []TimelineEntry
	Total int64
}
