package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/requesthub/requests-service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantMsg    string
	}{
		{"not_found", service.ErrNotFound, http.StatusNotFound, "Not found"},
		{"permission_denied", service.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
		{"file_size_limit", service.ErrFileSizeLimit, http.StatusBadRequest, "File size exceeds limit"},
		{"quota_exceeded", service.ErrQuotaExceeded, http.StatusBadRequest, "Storage quota exceeded"},
		{"argument_missing", service.ErrArgumentMissing, http.StatusBadRequest, "Missing required argument file_key or file_id"},
		{"stale_write", service.ErrStaleWrite, http.StatusConflict, "Conflict: stale revision"},
		{"nested_reply", service.ErrNestedReply, http.StatusBadRequest, "Nested replies are not allowed"},
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "Invalid argument"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "Internal error"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal error"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// сервис отдаёт ошибки обёрнутыми в op-контекст
			gotStatus, resp := ToHTTP(fmt.Errorf("service/op: %w", tc.in))
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantStatus, resp.Status)
			require.Equal(t, tc.wantMsg, resp.Message)
			require.Empty(t, resp.Errors)
		})
	}
}

func TestToHTTP_ValidationGroup(t *testing.T) {
	group := &service.ValidationGroupError{
		Fields: []service.FieldError{
			{Field: "payload.content", Messages: []string{"Missing required field."}},
			{Field: "payload.files[1]", Messages: []string{"File 123 not found."}},
		},
	}

	gotStatus, resp := ToHTTP(fmt.Errorf("service/op: %w", group))
	require.Equal(t, http.StatusBadRequest, gotStatus)
	require.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Errors, 2)
	require.Equal(t, "payload.content", resp.Errors[0].Field)
	require.Equal(t, "payload.files[1]", resp.Errors[1].Field)
	require.Equal(t, []string{"File 123 not found."}, resp.Errors[1].Messages)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "Internal error", resp.Message)
}

func TestWrite_ExplicitMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodDelete, "/x", nil), http.StatusNotFound, "File not found")

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"message":"File not found","status":404}`, rr.Body.String())
}
