// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etorres/go-api-scaffold/internal/service"
	"github.com/etorres/go-api-scaffold/internal/utils"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextSpy records whether the wrapped handler was reached and with which
// user ID in context.
type nextSpy struct {
	called bool
	userID uuid.UUID
	hasID  bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.hasID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuthMiddleware_Success verifies that a valid bearer token passes the
// middleware and the user ID from the token lands in the request context.
func TestAuthMiddleware_Success(t *testing.T) {
	userID := uuid.New()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: userID}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.True(t, spy.hasID)
	assert.Equal(t, userID, spy.userID)
}

// TestAuthMiddleware_MissingHeader verifies that a request without an
// Authorization header is rejected with 401.
func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
	assert.False(t, spy.called)
}

// TestAuthMiddleware_MalformedHeader verifies that a header without a token
// part is rejected with 401.
func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidAuthorizationHeader.Error())
	assert.False(t, spy.called)
}

// TestAuthMiddleware_EmptyToken verifies that a header with an empty token
// value is rejected with 401.
func TestAuthMiddleware_EmptyToken(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyToken.Error())
	assert.False(t, spy.called)
}

// TestAuthMiddleware_InvalidToken verifies that a token the auth service
// rejects results in 401 and the next handler is never reached.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenIsExpiredOrInvalid.Error())
	assert.False(t, spy.called)
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
