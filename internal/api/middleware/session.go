package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/Zonomo-CartService/internal/api/handlers"
)

// SessionHeader заголовок с ID сессии корзины
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "session_id"

const (
	maxSessionIDLength  = 128
	msgInvalidSessionID = "некорректный X-Session-ID"
)

// Session извлекает ID сессии из заголовка X-Session-ID
// Если заголовка нет, создается новая сессия; ID возвращается клиенту в том же заголовке.
// Некорректный ID (слишком длинный) отклоняется с 400.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))

		if len(sessionID) > maxSessionIDLength {
			handlers.RespondBadRequest(w, msgInvalidSessionID)
			return
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID возвращает ID сессии из контекста запроса
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSessionID кладет ID сессии в контекст (для тестов handlers)
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
