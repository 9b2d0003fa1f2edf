package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const UserIdKey contextKey = "user_id"

// Auth проверяет Bearer-токен и кладёт uuid пользователя в контекст.
// Дальше по стеку идентичность передаётся явно: хендлер достаёт её один раз
// и отдаёт сервису аргументом.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				unauthorized(w, r, "требуется токен авторизации")
				return
			}

			claims := &user.Claims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				logger.Warn("HTTP: Невалидный токен",
					zap.Error(err),
					zap.String("client_ip", r.RemoteAddr))
				unauthorized(w, r, "невалидный токен")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				unauthorized(w, r, "невалидный токен")
				return
			}

			ctx := context.WithValue(r.Context(), UserIdKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID достаёт идентичность вызывающего, положенную Auth.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIdKey).(uuid.UUID)
	return id, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"error":      message,
		"request_id": GetRequestID(r.Context()),
	})
}
