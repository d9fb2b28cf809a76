// access реализует проверку прав над заявками и их таймлайном.
//
// Политика намеренно статическая: роль admin — полный доступ, создатель
// заявки — работа со своими файлами и комментариями, прочие пользователи —
// только чтение. Интерфейс Policy позволяет подменить правила, не трогая
// сервисный слой.
package access

import (
	"slices"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
)

// Action — действие над заявкой.
type Action string

const (
	ActionReadRequest   Action = "read_request"
	ActionReadFiles     Action = "read_files"
	ActionManageFiles   Action = "manage_files"
	ActionReadTimeline  Action = "read_timeline"
	ActionCreateComment Action = "create_comment"
	ActionUpdateComment Action = "update_comment"
	ActionDeleteComment Action = "delete_comment"
)

// RoleAdmin имеет полный доступ к любой заявке.
const RoleAdmin = "admin"

// Policy отвечает на вопрос: может ли identity выполнить action над заявкой.
type Policy interface {
	Can(identity models.Identity, action Action, request *models.Request) bool
}

// StaticPolicy — политика по ролям и владению заявкой.
type StaticPolicy struct{}

var _ Policy = (*StaticPolicy)(nil)

// NewStaticPolicy возвращает политику по умолчанию.
func NewStaticPolicy() *StaticPolicy {
	return &StaticPolicy{}
}

// Can реализует Policy.
func (p *StaticPolicy) Can(identity models.Identity, action Action, request *models.Request) bool {
	if identity.UserID == uuid.Nil || request == nil {
		return false
	}

	if slices.Contains(identity.Roles, RoleAdmin) {
		return true
	}

	switch action {
	case ActionReadRequest, ActionReadFiles, ActionReadTimeline:
		return true
	case ActionCreateComment, ActionUpdateComment, ActionDeleteComment:
		// Авторство конкретного комментария сервис проверяет отдельно.
		return true
	case ActionManageFiles:
		return identity.UserID == request.CreatedBy
	default:
		return false
	}
}
