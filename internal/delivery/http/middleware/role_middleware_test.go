package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	"github.com/sleepysheepppp/hospital-management/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleRequest(roleID int, hasRole bool) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	if hasRole {
		req = req.WithContext(context.WithValue(req.Context(), RoleIDKey, roleID))
	}
	return req
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows matching role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, roleRequest(entity.RoleIDAdmin, true))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("allows any of several roles", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := RequireRole(entity.RoleIDAdmin, entity.RoleIDFrontDesk)(next)
		handler.ServeHTTP(rec, roleRequest(entity.RoleIDFrontDesk, true))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role redirects to login without detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, roleRequest(entity.RoleIDPatient, true))

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body response.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, "/login", body.Redirect)
		assert.Empty(t, body.Message)
	})

	t.Run("missing role redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireDoctor(next).ServeHTTP(rec, roleRequest(0, false))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body response.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "/login", body.Redirect)
	})
}
