package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mapia/backoffice-api/infrastructure/repository/mocks"
	"github.com/mapia/backoffice-api/internal/config"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/auditing"
)

func newService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)

	auditRepo := mocks.NewMockAuditLogRepository(ctrl)
	auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:           "segredo-de-teste",
			TokenExpiryHours: 8,
		},
	}

	return &Service{
		userRepo: userRepo,
		auditor:  auditing.NewService(auditRepo),
		cfg:      cfg,
	}, userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           42,
		Name:         "Gerente",
		Email:        "gerencia@mapia.app.br",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "Credenciais válidas geram token",
			email:    "gerencia@mapia.app.br",
			password: "mudar123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "gerencia@mapia.app.br").
					Return(activeUser(t, "mudar123"), nil)
			},
		},
		{
			name:     "Email é normalizado antes da consulta",
			email:    "  GERENCIA@mapia.app.br ",
			password: "mudar123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "gerencia@mapia.app.br").
					Return(activeUser(t, "mudar123"), nil)
			},
		},
		{
			name:     "Usuário inexistente retorna credenciais inválidas",
			email:    "ninguem@mapia.app.br",
			password: "mudar123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "ninguem@mapia.app.br").
					Return(nil, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Senha incorreta retorna credenciais inválidas",
			email:    "gerencia@mapia.app.br",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "gerencia@mapia.app.br").
					Return(activeUser(t, "mudar123"), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Conta desativada é bloqueada",
			email:    "gerencia@mapia.app.br",
			password: "mudar123",
			setup: func(userRepo *mocks.MockUserRepository) {
				user := activeUser(t, "mudar123")
				user.Active = false
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "gerencia@mapia.app.br").
					Return(user, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Email vazio é rejeitado sem consultar o banco",
			email:    "",
			password: "mudar123",
			setup:    func(*mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "Senha vazia é rejeitada sem consultar o banco",
			email:    "gerencia@mapia.app.br",
			password: "",
			setup:    func(*mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo := newService(ctrl)
			tt.setup(userRepo)

			token, err := service.LoginUser(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newService(ctrl)

	t.Run("Token emitido pelo próprio serviço é aceito", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "gerencia@mapia.app.br").
			Return(activeUser(t, "mudar123"), nil)

		token, err := service.LoginUser(context.Background(), "gerencia@mapia.app.br", "mudar123")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)

		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "gerencia@mapia.app.br", claims.UserEmail)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("cabecalho.corpo.assinatura")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token vazio é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	t.Run("Hash de senha nunca sai do serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newService(ctrl)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 42).Return(activeUser(t, "mudar123"), nil)

		user, err := service.GetUserProfile(context.Background(), 42)

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
		assert.Equal(t, "Gerente", user.Name)
	})

	t.Run("Usuário inexistente retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newService(ctrl)
		userRepo.EXPECT().GetUserByID(gomock.Any(), 99).Return(nil, nil)

		user, err := service.GetUserProfile(context.Background(), 99)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestService_ListUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newService(ctrl)
	userRepo.EXPECT().ListUsers(gomock.Any()).Return([]*domain.User{
		activeUser(t, "mudar123"),
		activeUser(t, "outra-senha"),
	}, nil)

	users, err := service.ListUser(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}
