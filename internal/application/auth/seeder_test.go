package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardiao/guardiao-api/internal/application/auth"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

func TestSeed_BaseVazia_CriaAsTresContas(t *testing.T) {
	repo := newFakeUserRepo()
	seeder := auth.NewSeeder(repo)

	created, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	admin, err := repo.FindByEmail(context.Background(), "admin@guardiao.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdministrador, admin.Role)
	assert.True(t, admin.IsActive)
	// Senha inicial hasheada, nunca em texto plano
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	seg, err := repo.FindByEmail(context.Background(), "seguranca@guardiao.com")
	require.NoError(t, err)
	require.NotNil(t, seg)
	assert.Equal(t, entity.RoleSeguranca, seg.Role)

	sind, err := repo.FindByEmail(context.Background(), "sindico@guardiao.com")
	require.NoError(t, err)
	require.NotNil(t, sind)
	assert.Equal(t, entity.RoleSindico, sind.Role)
}

// Rodar o seeder duas vezes nunca produz mais de 3 contas.
func TestSeed_Idempotente(t *testing.T) {
	repo := newFakeUserRepo()
	seeder := auth.NewSeeder(repo)

	_, err := seeder.Seed(context.Background())
	require.NoError(t, err)

	created, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	n, _ := repo.Count(context.Background())
	assert.EqualValues(t, 3, n)
}

// Base já povoada (mesmo com uma conta só) é deixada intocada.
func TestSeed_BaseNaoVazia_NaoMexe(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(t, "operador@guardiao.com", "senha", entity.RoleSeguranca, true)
	seeder := auth.NewSeeder(repo)

	created, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	admin, err := repo.FindByEmail(context.Background(), "admin@guardiao.com")
	require.NoError(t, err)
	assert.Nil(t, admin, "seeder não deve criar contas em base não vazia")
}
