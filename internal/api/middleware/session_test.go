package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetSessionID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("uses header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set(SessionHeader, "sess-1")
		rec := httptest.NewRecorder()

		Session(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "sess-1", got)
		assert.Equal(t, "sess-1", rec.Header().Get(SessionHeader))
	})

	t.Run("creates session when header is missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()

		Session(next).ServeHTTP(rec, req)

		require.NotEmpty(t, got)
		assert.Len(t, got, 36)
		assert.Equal(t, got, rec.Header().Get(SessionHeader))
	})

	t.Run("rejects oversized id", func(t *testing.T) {
		got = ""
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set(SessionHeader, strings.Repeat("x", 200))
		rec := httptest.NewRecorder()

		Session(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, got)
	})
}
