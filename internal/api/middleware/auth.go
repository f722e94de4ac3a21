package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/resilientmind/coaching-platform/internal/api/handlers"
)

type contextKey string

const (
	userIDKey     contextKey = "userID"
	isAdminKey    contextKey = "isAdmin"
	membershipKey contextKey = "membership"
)

// Заголовки аутентификации, проставляются API gateway после проверки токена
const (
	headerUserID         = "X-User-ID"
	headerUserRole       = "X-User-Role"
	headerUserMembership = "X-User-Membership"
	roleAdmin            = "admin"
)

// Auth проверяет заголовок X-User-ID и кладет идентификатор клиента в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isAdminKey, r.Header.Get(headerUserRole) == roleAdmin)
		ctx = context.WithValue(ctx, membershipKey, r.Header.Get(headerUserMembership))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью admin
// Должен стоять после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает идентификатор клиента из контекста
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// IsAdmin возвращает признак админской роли из контекста
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}

// Membership возвращает тариф клиента из контекста
// Пустая строка, если gateway не проставил заголовок
func Membership(ctx context.Context) string {
	membership, _ := ctx.Value(membershipKey).(string)
	return membership
}
