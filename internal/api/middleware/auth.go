package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя (проставляется gateway)
const UserIDHeader = "X-User-ID"

const msgInvalidUserHeader = "отсутствует или некорректный заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth достаёт ID пользователя из X-User-ID и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserHeader)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID возвращает контекст с ID пользователя
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID возвращает ID пользователя, положенный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
