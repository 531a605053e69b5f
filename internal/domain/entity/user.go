package entity

import "time"

// Role papel de um usuário do sistema. Conjunto fechado: valores fora da
// lista não recebem nenhum privilégio (default-deny).
type Role string

// Papéis válidos para User.
const (
	RoleAdministrador Role = "Administrador"
	RoleSindico       Role = "Síndico"
	RoleSeguranca     Role = "Segurança"
)

// ParseRole valida um papel vindo da borda HTTP. Retorna false para
// qualquer valor fora do conjunto fechado.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdministrador, RoleSindico, RoleSeguranca:
		return Role(s), true
	}
	return "", false
}

// User representa um membro da equipe do condomínio (portaria, síndico, admin).
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	CreatedAt    time.Time
	IsActive     bool
}
