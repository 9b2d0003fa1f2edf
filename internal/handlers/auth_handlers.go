package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"todoTracker/internal/handlers/dto"
	"todoTracker/internal/logger"
	"todoTracker/internal/service"

	"go.uber.org/zap"
)

type AuthHandler struct {
	AuthService AuthService
}

func NewAuthHandler(authService AuthService) AuthHandler {
	return AuthHandler{
		AuthService: authService,
	}
}

// SignIn обслуживает все три сценария входа: анонимный, регистрацию и вход
// по паролю — сценарий выбирает сервис по содержимому запроса.
func (s *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	var request dto.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	logger.Info("HTTP: Вызов сервиса авторизации")
	result, err := s.AuthService.SignIn(r.Context(), service.SignInInput{
		Email:    request.Email,
		Password: request.Password,
		Flow:     request.Flow,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Вход выполнен",
		zap.String("user_id", result.User.UUID.String()),
		zap.Bool("anonymous", result.User.IsAnonymous),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.AuthResponse{
		AccessToken: result.AccessToken,
		User:        dto.FromUser(result.User),
	})
}

func (s *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	current, err := s.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responseWithJSON(w, http.StatusOK, dto.FromUser(current))
}
