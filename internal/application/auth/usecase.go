// Package auth contém os casos de uso de autenticação: login, registro de
// usuários da equipe e o seeding das contas padrão.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardiao/guardiao-api/internal/application/dto"
	"github.com/guardiao/guardiao-api/internal/domain"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
	"github.com/guardiao/guardiao-api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens de sessão.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// UseCase casos de uso de autenticação.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, exige conta ativa e emite o token de sessão.
// Email desconhecido e senha errada produzem o mesmo ErrUnauthorized para não
// sinalizar a existência de contas.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUserDisabled
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *dto.NewUserResponse(user),
	}, nil
}

// Register cria um usuário da equipe: valida o papel, faz o hash bcrypt da
// senha e persiste. Devolve ErrEmailAlreadyExists se o email já estiver em uso
// e ErrInvalidInput para papel fora do conjunto fechado.
//
// A restrição "apenas Administrador registra" é aplicada pelo middleware de
// autorização, não aqui.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
