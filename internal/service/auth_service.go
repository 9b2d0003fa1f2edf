package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/user"
	rep "todoTracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const FlowSignIn = "signIn"
const FlowSignUp = "signUp"

type AuthService struct {
	repo      UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

type SignInInput struct {
	Email    *string
	Password *string
	Flow     string
}

type AuthResult struct {
	AccessToken string
	User        *user.User
}

// SignIn покрывает три сценария: анонимный вход (без email и пароля),
// регистрацию (flow = signUp) и вход по паролю. Любой успешный сценарий
// завершается выпуском токена.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	if input.Email == nil && input.Password == nil {
		return s.signInAnonymous(ctx)
	}

	if input.Email == nil || input.Password == nil {
		return nil, NewUnauthorized("требуются email и пароль")
	}

	if input.Flow == FlowSignUp {
		return s.signUp(ctx, *input.Email, *input.Password)
	}
	return s.signIn(ctx, *input.Email, *input.Password)
}

func (s *AuthService) signInAnonymous(ctx context.Context) (*AuthResult, error) {
	anonymous := &user.User{
		UUID:        uuid.New(),
		IsAnonymous: true,
	}

	if err := s.repo.Create(ctx, anonymous); err != nil {
		return nil, fmt.Errorf("создание анонимного пользователя: %w", err)
	}

	logger.Info("Service: Анонимный вход", zap.String("user_id", anonymous.UUID.String()))
	return s.issueToken(anonymous)
}

func (s *AuthService) signUp(ctx context.Context, email, password string) (*AuthResult, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, NewConflict("пользователь", "email уже зарегистрирован")
	} else if !errors.Is(err, rep.ErrNotFound) {
		return nil, fmt.Errorf("поиск пользователя: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, fmt.Errorf("хеширование пароля: %w", err)
	}

	hashStr := string(hash)
	newUser := &user.User{
		UUID:         uuid.New(),
		Email:        &email,
		PasswordHash: &hashStr,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, rep.ErrConflict) {
			return nil, NewConflict("пользователь", "email уже зарегистрирован")
		}
		return nil, fmt.Errorf("создание пользователя: %w", err)
	}

	logger.Info("Service: Регистрация", zap.String("user_id", newUser.UUID.String()))
	return s.issueToken(newUser)
}

func (s *AuthService) signIn(ctx context.Context, email, password string) (*AuthResult, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewUnauthorized("неверные учётные данные")
		}
		return nil, fmt.Errorf("поиск пользователя: %w", err)
	}

	if existing.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*existing.PasswordHash), []byte(password)) != nil {
		logger.Warn("Service: Неверный пароль", zap.String("user_id", existing.UUID.String()))
		return nil, NewUnauthorized("неверный пароль")
	}

	return s.issueToken(existing)
}

// CurrentUser возвращает учётную запись по идентификатору из токена.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	existing, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewUnauthorized("пользователь не найден")
		}
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}
	return existing, nil
}

func (s *AuthService) issueToken(u *user.User) (*AuthResult, error) {
	now := time.Now()
	claims := user.Claims{
		Email:       u.Email,
		IsAnonymous: u.IsAnonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UUID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("подпись токена: %w", err)
	}

	return &AuthResult{AccessToken: signed, User: u}, nil
}
