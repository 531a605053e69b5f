package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/guardiao/guardiao-api/internal/application/dto"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/pkg/jwt"
)

// Locals keys para o usuário autenticado no Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalUser   = "user"
)

// userFinder é o contrato mínimo que o middleware precisa para resolver o
// sujeito do token. Implementado por repository.UserRepository; a interface
// local evita o import do pacote de repositórios aqui.
type userFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware valida o Bearer Token JWT e resolve o usuário vivo na base.
//
// Falha com 401 se o token estiver ausente, malformado, inválido ou expirado,
// se o usuário referenciado não existir mais, ou se a conta tiver sido
// desativada depois da emissão do token (a checagem de is_active é refeita a
// cada requisição, não só no login).
func AuthMiddleware(jwtSecret string, users userFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao resolver o usuário da sessão"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "não foi possível validar as credenciais"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuário desativado"})
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, string(user.Role))
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole autoriza somente os papéis listados. Deve ser usado DEPOIS de
// AuthMiddleware. Papel vazio ou fora da lista responde 403 (default-deny:
// um valor desconhecido gravado na base não ganha nenhum privilégio).
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "papel ausente na sessão"})
		}
		for _, a := range allowed {
			if entity.Role(role) == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado para este papel"})
	}
}

// GetUserID devolve o ID do usuário autenticado (após o AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o papel do usuário autenticado (após o AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUser devolve o registro do usuário autenticado (após o AuthMiddleware).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
