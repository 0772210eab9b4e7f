package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercier/pokecard-api/internal/mocks"
	"github.com/lmercier/pokecard-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "valid bearer token",
			authHeader:     "Bearer good-token",
			claims:         &auth.Claims{UserID: 42, Email: "ash@pallet.town"},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer stale-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer bad-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unexpected validation error",
			authHeader:     "Bearer any-token",
			validateErr:    errors.New("key store unreachable"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			jwtService := &mocks.MockJWTService{
				Claims:      tc.claims,
				ValidateErr: tc.validateErr,
			}
			mw := NewAuthMiddleware(jwtService)

			nextCalled := false
			var ctxUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				ctxUserID, _ = GetUserID(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectNext, nextCalled)
			if tc.expectNext {
				require.NotNil(t, tc.claims)
				assert.Equal(t, tc.claims.UserID, ctxUserID)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	t.Run("absent from context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := GetUserID(req)
		assert.False(t, ok)
	})

	t.Run("present in context", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{
			ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
				return &auth.Claims{UserID: 7}, nil
			},
		}
		mw := NewAuthMiddleware(jwtService)

		var got int64
		var ok bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = GetUserID(r)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		mw.Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, ok)
		assert.Equal(t, int64(7), got)
	})
}
