package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mapia/backoffice-api/infrastructure/repository"
	"github.com/mapia/backoffice-api/internal/config"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
	"github.com/mapia/backoffice-api/pkg/apiErrors"
	"github.com/mapia/backoffice-api/pkg/log"
)

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	auditor  auditing.Auditor
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, auditor auditing.Auditor, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		auditor:  auditor,
		cfg:      cfg,
	}
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		s.recordLoginFailure(ctx, email, "usuário não encontrado")
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if !user.Active {
		s.recordLoginFailure(ctx, email, "conta desativada")
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordLoginFailure(ctx, email, "senha incorreta")
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("login realizado")

	s.auditor.Record(ctx, &domain.Claims{UserID: user.ID, UserEmail: user.Email}, domain.ActionUserLoginSuccess, domain.EntityUser, auditing.EntityID(user.ID), nil)

	return token, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUser(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	expiry := time.Duration(s.cfg.Auth.TokenExpiryHours) * time.Hour

	claims := &domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) recordLoginFailure(ctx context.Context, email, reason string) {
	s.auditor.Record(ctx, nil, domain.ActionUserLoginFailed, domain.EntityUser, nil, map[string]any{
		"email":  email,
		"motivo": reason,
	})
}

func handleEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
