package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
)

// seedAccount conta fixa criada na primeira execução.
type seedAccount struct {
	Email    string
	Name     string
	Role     entity.Role
	Password string
}

// Contas padrão do condomínio. As senhas iniciais devem ser trocadas pelo
// operador após o primeiro login.
var defaultAccounts = []seedAccount{
	{Email: "admin@guardiao.com", Name: "Administrador", Role: entity.RoleAdministrador, Password: "admin123"},
	{Email: "seguranca@guardiao.com", Name: "Segurança", Role: entity.RoleSeguranca, Password: "seg123"},
	{Email: "sindico@guardiao.com", Name: "Síndico", Role: entity.RoleSindico, Password: "sind123"},
}

// Seeder garante as contas padrão na primeira execução do processo.
type Seeder struct {
	userRepo repository.UserRepository
}

// NewSeeder constrói o seeder.
func NewSeeder(userRepo repository.UserRepository) *Seeder {
	return &Seeder{userRepo: userRepo}
}

// Seed insere as três contas padrão se a coleção de usuários estiver vazia.
// Idempotente: com qualquer usuário já cadastrado não faz nada (nem merge,
// nem update). Retorna quantas contas foram criadas.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}
	created := 0
	for _, acc := range defaultAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        acc.Email,
			Name:         acc.Name,
			Role:         acc.Role,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
			IsActive:     true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
