package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
)

// Grafo completo do ciclo de vida: pending decide, approved conclui,
// denied e completed não saem do lugar.
func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from entity.Status
		to   entity.Status
		want bool
	}{
		{"pending pode ser aprovada", entity.StatusPending, entity.StatusApproved, true},
		{"pending pode ser negada", entity.StatusPending, entity.StatusDenied, true},
		{"pending não pula para completed", entity.StatusPending, entity.StatusCompleted, false},
		{"pending não volta para pending", entity.StatusPending, entity.StatusPending, false},
		{"approved pode ser concluída", entity.StatusApproved, entity.StatusCompleted, true},
		{"approved não volta para pending", entity.StatusApproved, entity.StatusPending, false},
		{"approved não vira denied", entity.StatusApproved, entity.StatusDenied, false},
		{"denied é terminal (approved)", entity.StatusDenied, entity.StatusApproved, false},
		{"denied é terminal (completed)", entity.StatusDenied, entity.StatusCompleted, false},
		{"completed é terminal (pending)", entity.StatusCompleted, entity.StatusPending, false},
		{"completed é terminal (approved)", entity.StatusCompleted, entity.StatusApproved, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, entity.StatusPending.IsTerminal())
	assert.False(t, entity.StatusApproved.IsTerminal())
	assert.True(t, entity.StatusDenied.IsTerminal())
	assert.True(t, entity.StatusCompleted.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "denied", "completed"} {
		got, ok := entity.ParseStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, entity.Status(s), got)
	}
	_, ok := entity.ParseStatus("cancelled")
	assert.False(t, ok, "status fora do conjunto fechado deve ser rejeitado")
}

func TestParseRole(t *testing.T) {
	for _, r := range []string{"Administrador", "Síndico", "Segurança"} {
		got, ok := entity.ParseRole(r)
		assert.True(t, ok, r)
		assert.Equal(t, entity.Role(r), got)
	}
	_, ok := entity.ParseRole("Porteiro")
	assert.False(t, ok, "papel fora do conjunto fechado deve ser rejeitado")
}
