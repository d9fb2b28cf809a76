package service

// Тесты комментариев таймлайна (internal/service/comments.go).
//
//  Проверяем:
//  - накопительную валидацию payload (content + перекрёстные файловые ссылки);
//  - правила ответов: один уровень вложенности, родитель той же заявки;
//  - авторизацию мутаций (автор либо admin);
//  - маппинг ошибок storage -> service (NotFound / StaleWrite / Internal);
//  - cleanup-реконсилиацию файлов при обновлении и удалении;
//  - мягкое удаление: переписывание в лог-событие фиксированным payload;
//  - happy-path каждого метода.

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestService_CreateComment_Validation(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// пустой userID
	_, err := s.CreateComment(context.Background(), models.Identity{}, uuid.New(), models.EventPayload{Content: "ok"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустой content -> одна ошибка поля payload.content
	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)

	_, err = s.CreateComment(context.Background(), identity, request.ID, models.EventPayload{Content: "   "})

	var group *ValidationGroupError
	require.ErrorAs(t, err, &group)
	require.Len(t, group.Fields, 1)
	require.Equal(t, "payload.content", group.Fields[0].Field)
	require.Equal(t, []string{"Missing required field."}, group.Fields[0].Messages)
}

// Все нарушения собираются в одну группу: пустой content и каждая битая
// файловая ссылка дают отдельные записи с индексом позиции.
func TestService_CreateComment_AccumulatesViolations(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)

	known := models.FileEntry{ID: uuid.New(), RequestID: request.ID, Key: "a-aaaaa-aaaaa.txt"}
	missing := uuid.New()

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.requests.EXPECT().
		FilesByIDs(gomock.Any(), request.ID, gomock.Any()).
		Return([]models.FileEntry{known}, nil)

	_, err := s.CreateComment(context.Background(), identity, request.ID, models.EventPayload{
		Content: "  ",
		Files: []models.FileRef{
			{FileID: known.ID.String()},
			{FileID: missing.String()},
		},
	})

	var group *ValidationGroupError
	require.ErrorAs(t, err, &group)
	require.Len(t, group.Fields, 2)
	require.Equal(t, "payload.content", group.Fields[0].Field)
	require.Equal(t, "payload.files[1]", group.Fields[1].Field)
	require.Equal(t, []string{fmt.Sprintf("File %s not found.", missing)}, group.Fields[1].Messages)
}

// Регистр записи uuid в ссылке не влияет на сверку: ссылка в верхнем
// регистре резолвится в тот же файл и обогащается при дампе.
func TestService_CreateComment_FileRefCaseInsensitive(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)

	known := models.FileEntry{
		ID:        uuid.New(),
		RequestID: request.ID,
		Key:       "shot-aaaaa-aaaaa.png",
	}
	upperRef := strings.ToUpper(known.ID.String())

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)

	// Валидация + дамп: оба прохода резолвят ссылку по каноническому id.
	m.requests.EXPECT().
		FilesByIDs(gomock.Any(), request.ID, []uuid.UUID{known.ID}).
		Return([]models.FileEntry{known}, nil).
		Times(2)

	m.events.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) (*models.Event, error) {
			return mustComment(request.ID, "", identity.UserID, event.Payload), nil
		})

	m.requests.EXPECT().TouchActivity(gomock.Any(), request.ID, gomock.Any()).Return(nil)
	m.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	m.index.EXPECT().Refresh(gomock.Any()).Return(nil)

	entry, err := s.CreateComment(context.Background(), identity, request.ID, models.EventPayload{
		Content: "see attachment",
		Files:   []models.FileRef{{FileID: upperRef}},
	})
	require.NoError(t, err)
	require.Len(t, entry.Payload.Files, 1)
	require.Equal(t, known.Key, entry.Payload.Files[0].Key)
}

func TestService_CreateComment_OK(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)

	m.events.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) (*models.Event, error) {
			require.Equal(t, request.ID, event.RequestID)
			require.Empty(t, event.ParentID)
			require.Equal(t, models.EventComment, event.Type)
			require.Equal(t, identity.UserID, event.CreatedBy)
			// content нормализуется до записи
			require.Equal(t, "hello", event.Payload.Content)

			created := mustComment(request.ID, "", identity.UserID, event.Payload)
			return created, nil
		})

	m.requests.EXPECT().TouchActivity(gomock.Any(), request.ID, gomock.Any()).Return(nil)
	m.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	m.index.EXPECT().Refresh(gomock.Any()).Return(nil)

	entry, err := s.CreateComment(context.Background(), identity, request.ID, models.EventPayload{Content: "  hello  "})
	require.NoError(t, err)
	require.Equal(t, request.ID, entry.RequestID)
	require.Equal(t, "hello", entry.Payload.Content)
}

func TestService_CreateReply_NestedRejected(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)

	// родитель сам является ответом
	parent := mustComment(request.ID, uuid.New().String(), uuid.New(), models.EventPayload{Content: "reply"})

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), parent.ID).Return(parent, nil)

	_, err := s.CreateReply(context.Background(), identity, request.ID, parent.ID, models.EventPayload{Content: "ok"})
	require.ErrorIs(t, err, ErrNestedReply)
}

// Родитель из другой заявки неотличим от отсутствующего.
func TestService_CreateReply_ParentFromOtherRequest(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)
	parent := mustComment(uuid.New(), "", uuid.New(), models.EventPayload{Content: "root"})

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), parent.ID).Return(parent, nil)

	_, err := s.CreateReply(context.Background(), identity, request.ID, parent.ID, models.EventPayload{Content: "ok"})
	require.ErrorIs(t, err, ErrNotFound)
}

// Лог-события не ветка: ответ на них отклоняется.
func TestService_CreateReply_ToLogEventRejected(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)

	parent := mustComment(request.ID, "", uuid.New(), models.EventPayload{Content: "deleted"})
	parent.Type = models.EventLog

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), parent.ID).Return(parent, nil)

	_, err := s.CreateReply(context.Background(), identity, request.ID, parent.ID, models.EventPayload{Content: "ok"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreateReply_OK(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(identity.UserID, nil, 0)
	parent := mustComment(request.ID, "", uuid.New(), models.EventPayload{Content: "root"})

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), parent.ID).Return(parent, nil)
	m.events.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.Event) (*models.Event, error) {
			require.Equal(t, parent.ID, event.ParentID)
			return mustComment(request.ID, parent.ID, identity.UserID, event.Payload), nil
		})
	m.requests.EXPECT().TouchActivity(gomock.Any(), request.ID, gomock.Any()).Return(nil)
	m.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	m.index.EXPECT().Refresh(gomock.Any()).Return(nil)

	entry, err := s.CreateReply(context.Background(), identity, request.ID, parent.ID, models.EventPayload{Content: "ok"})
	require.NoError(t, err)
	require.Equal(t, parent.ID, entry.ParentID)
}

// Мутации доступны автору и admin; прочим — отказ.
func TestService_UpdateComment_NotAuthor(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	request := mustRequest(uuid.New(), nil, 0)
	event := mustComment(request.ID, "", uuid.New(), models.EventPayload{Content: "root"})

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.UpdateComment(context.Background(), identity, request.ID, event.ID, models.EventPayload{Content: "x"}, storage.UnconditionalRevision)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestService_UpdateComment_StorageErrors(t *testing.T) {
	cases := []struct {
		name       string
		storageErr error
		serviceErr error
	}{
		{"not_found", storage.ErrNotFoundEvent, ErrNotFound},
		{"stale_write", storage.ErrStaleWrite, ErrStaleWrite},
		{"internal", errors.New("boom"), ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, m, ctrl := newServiceWithMocks(t)
			defer ctrl.Finish()

			identity := models.Identity{UserID: uuid.New()}
			request := mustRequest(identity.UserID, nil, 0)
			event := mustComment(request.ID, "", identity.UserID, models.EventPayload{Content: "root"})

			m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
			m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
			m.events.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
			m.events.EXPECT().
				UpdatePayload(gomock.Any(), event.ID, gomock.Any(), int64(3)).
				Return(nil, tc.storageErr)

			_, err := s.UpdateComment(context.Background(), identity, request.ID, event.ID, models.EventPayload{Content: "x"}, 3)
			require.ErrorIs(t, err, tc.serviceErr)
		})
	}
}

// Реконсилиация при обновлении: файлы из previous - next удаляются целиком
// (блоб, запись, файловые поля индекса).
func TestService_UpdateComment_CleansUpDroppedFiles(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	bucketID := uuid.New()
	request := mustRequest(identity.UserID, &bucketID, 4)

	dropped := models.FileEntry{ID: uuid.New(), RequestID: request.ID, Key: "old-aaaaa-aaaaa.txt"}
	kept := models.FileEntry{ID: uuid.New(), RequestID: request.ID, Key: "new-bbbbb-bbbbb.txt"}

	event := mustComment(request.ID, "", identity.UserID, models.EventPayload{
		Content: "before",
		Files: []models.FileRef{
			{FileID: dropped.ID.String()},
			{FileID: kept.ID.String()},
		},
	})

	next := models.EventPayload{
		Content: "after",
		Files:   []models.FileRef{{FileID: kept.ID.String()}},
	}

	updated := *event
	updated.Payload = next
	updated.Revision = event.Revision + 1

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	// валидация ссылок нового payload + обогащение дампа
	m.requests.EXPECT().
		FilesByIDs(gomock.Any(), request.ID, []uuid.UUID{kept.ID}).
		Return([]models.FileEntry{kept}, nil).
		Times(2)

	m.events.EXPECT().
		UpdatePayload(gomock.Any(), event.ID, gomock.Any(), storage.UnconditionalRevision).
		Return(&updated, nil)

	// cleanup выпавшего файла
	m.requests.EXPECT().
		ListFiles(gomock.Any(), request.ID).
		Return([]models.FileEntry{dropped, kept}, nil)
	m.blobs.EXPECT().RemoveObject(gomock.Any(), bucketID, dropped.Key).Return(nil)
	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.requests.EXPECT().DeleteFile(gomock.Any(), dropped, request.Revision).Return(nil)
	m.index.EXPECT().StripFileFields(gomock.Any(), request.ID, dropped.ID.String()).Return(nil)

	m.requests.EXPECT().TouchActivity(gomock.Any(), request.ID, gomock.Any()).Return(nil)
	m.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	m.index.EXPECT().Refresh(gomock.Any()).Return(nil)

	entry, err := s.UpdateComment(context.Background(), identity, request.ID, event.ID, next, storage.UnconditionalRevision)
	require.NoError(t, err)
	require.Equal(t, "after", entry.Payload.Content)
	require.Len(t, entry.Payload.Files, 1)
	require.Equal(t, kept.ID.String(), entry.Payload.Files[0].FileID)
	// дамп обогащён живыми данными записи
	require.Equal(t, kept.Key, entry.Payload.Files[0].Key)
}

// Мягкое удаление: событие переписывается на месте в лог с фиксированным
// payload, все файловые ссылки комментария зачищаются.
func TestService_DeleteComment_OK(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	bucketID := uuid.New()
	request := mustRequest(identity.UserID, &bucketID, 9)

	attached := models.FileEntry{ID: uuid.New(), RequestID: request.ID, Key: "doc-ccccc-ccccc.pdf"}

	event := mustComment(request.ID, "", identity.UserID, models.EventPayload{
		Content: "to be removed",
		Files:   []models.FileRef{{FileID: attached.ID.String()}},
	})

	deleted := *event
	deleted.Type = models.EventLog
	deleted.Payload = models.EventPayload{
		Content: models.DeletedCommentContent,
		Event:   models.DeletedCommentEvent,
	}
	deleted.Revision = event.Revision + 1

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	m.events.EXPECT().
		ConvertToLog(gomock.Any(), event.ID, models.EventPayload{
			Content: models.DeletedCommentContent,
			Event:   models.DeletedCommentEvent,
		}, storage.UnconditionalRevision).
		Return(&deleted, nil)

	m.requests.EXPECT().
		ListFiles(gomock.Any(), request.ID).
		Return([]models.FileEntry{attached}, nil)
	m.blobs.EXPECT().RemoveObject(gomock.Any(), bucketID, attached.Key).Return(nil)
	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.requests.EXPECT().DeleteFile(gomock.Any(), attached, request.Revision).Return(nil)
	m.index.EXPECT().StripFileFields(gomock.Any(), request.ID, attached.ID.String()).Return(nil)

	m.requests.EXPECT().TouchActivity(gomock.Any(), request.ID, gomock.Any()).Return(nil)
	m.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	m.index.EXPECT().Refresh(gomock.Any()).Return(nil)

	entry, err := s.DeleteComment(context.Background(), identity, request.ID, event.ID, storage.UnconditionalRevision)
	require.NoError(t, err)
	require.Equal(t, models.EventLog, entry.Type)
	require.Equal(t, models.DeletedCommentContent, entry.Payload.Content)
	require.Equal(t, models.DeletedCommentEvent, entry.Payload.Event)
	// позиция и связи сохраняются
	require.Equal(t, event.ID, entry.ID)
	require.Equal(t, event.ParentID, entry.ParentID)
}

// Ошибки cleanup не фатальны: мутация уже зафиксирована, результат успешный.
func TestService_DeleteComment_CleanupFailureSwallowed(t *testing.T) {
	s, m, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	bucketID := uuid.New()
	request := mustRequest(identity.UserID, &bucketID, 0)

	attached := models.FileEntry{ID: uuid.New(), RequestID: request.ID, Key: "doc-ddddd-ddddd.pdf"}

	event := mustComment(request.ID, "", identity.UserID, models.EventPayload{
		Content: "to be removed",
		Files:   []models.FileRef{{FileID: attached.ID.String()}},
	})

	deleted := *event
	deleted.Type = models.EventLog
	deleted.Payload = models.EventPayload{
		Content: models.DeletedCommentContent,
		Event:   models.DeletedCommentEvent,
	}

	m.requests.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	m.policy.EXPECT().Can(identity, gomock.Any(), request).Return(true)
	m.events.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	m.events.EXPECT().
		ConvertToLog(gomock.Any(), event.ID, gomock.Any(), storage.UnconditionalRevision).
		Return(&deleted, nil)

	m.requests.EXPECT().
		ListFiles(gomock.Any(), request.ID).
		Return(nil, errors.New("storage down"))

	m.requests.EXPECT().TouchActivity(gomock.Any(), request.ID, gomock.Any()).Return(nil)
	m.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	m.index.EXPECT().Refresh(gomock.Any()).Return(nil)

	_, err := s.DeleteComment(context.Background(), identity, request.ID, event.ID, storage.UnconditionalRevision)
	require.NoError(t, err)
}
