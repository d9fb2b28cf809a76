package models

import (
	"time"

	"github.com/google/uuid"
)

// FileEntry — запись одного загруженного вложения заявки (PostgreSQL).
// Важно:
//   - ID генерируется хранилищем при вставке и неизменяем.
//   - Key уникален в пределах заявки и содержит случайный суффикс,
//     поэтому повторная загрузка одного имени файла даёт разные ключи.
//   - OriginalFilename — имя, присланное пользователем; хранится как
//     метаданные отдельно от ключа объекта.
//   - Checksum — в формате "md5:<hex>".
//   - ObjectVersion — ссылка на версию объекта в блоб-хранилище.
//   - Удаление терминально: после удаления тот же ID не возникает вновь.
type FileEntry struct {
	ID               uuid.UUID
	RequestID        uuid.UUID
	Key              string
	OriginalFilename string
	Size             int64
	Mimetype         string
	Checksum         string
	ObjectVersion    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FileLinks — ссылки файловой проекции для клиента.
type FileLinks struct {
	Self         string `json:"self"`
	Content      string `json:"content"`
	DownloadHTML string `json:"download_html"`
}
