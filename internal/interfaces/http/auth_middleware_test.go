package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardiao/guardiao-api/internal/domain/entity"
	apphttp "github.com/guardiao/guardiao-api/internal/interfaces/http"
	pkgjwt "github.com/guardiao/guardiao-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "guardiao-api-test"
	testExpHours  = 24
)

// fakeUserFinder resolve o sujeito do token em memória.
type fakeUserFinder struct {
	users map[string]*entity.User
}

func (f *fakeUserFinder) FindByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func finderWith(users ...*entity.User) *fakeUserFinder {
	m := map[string]*entity.User{}
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserFinder{users: m}
}

func activeUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:        testUserID,
		Email:     "teste@guardiao.com",
		Name:      "Usuário de Teste",
		Role:      role,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}
}

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o JWT e resolver o usuário
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(finder *fakeUserFinder, allowed ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, finder),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor gera um JWT para o usuário indicado.
func tokenFor(t *testing.T, userID string, role entity.Role) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, string(role), testIssuer, testExpHours)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — resolução da sessão
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleSeguranca)), entity.RoleSeguranca)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleSeguranca)), entity.RoleSeguranca)
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleSeguranca)), entity.RoleSeguranca)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token expirado falha independente de o usuário ainda existir.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleSeguranca)), entity.RoleSeguranca)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Segurança", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token válido cujo sujeito não existe mais na base → 401.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(finderWith(), entity.RoleSeguranca) // base vazia
	resp := doRequest(t, app, tokenFor(t, testUserID, entity.RoleSeguranca))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Conta desativada depois da emissão do token → 401 na próxima requisição.
func TestAuthMiddleware_UsuarioDesativado_Retorna401(t *testing.T) {
	user := activeUser(entity.RoleSeguranca)
	user.IsActive = false
	app := buildTestApp(finderWith(user), entity.RoleSeguranca)

	resp := doRequest(t, app, tokenFor(t, testUserID, entity.RoleSeguranca))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "desativado")
}

func TestAuthMiddleware_CarregaLocals(t *testing.T) {
	finder := finderWith(activeUser(entity.RoleSindico))
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, finder), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, testUserID, entity.RoleSindico))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "Síndico", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole — política de autorização
// ──────────────────────────────────────────────────────────────────────────────

// Administrador acessa rota restrita a Administrador → 200.
func TestRequireRole_AdministradorAcessaRotaAdmin(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleAdministrador)), entity.RoleAdministrador)
	resp := doRequest(t, app, tokenFor(t, testUserID, entity.RoleAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Administrador deve acessar rota restrita a Administrador")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Administrador", body["role"])
}

// Síndico acessa rota que permite Administrador ou Síndico (delete) → 200.
func TestRequireRole_SindicoAcessaRotaDeDelete(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleSindico)), entity.RoleAdministrador, entity.RoleSindico)
	resp := doRequest(t, app, tokenFor(t, testUserID, entity.RoleSindico))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Segurança bloqueada em rota de Administrador/Síndico → 403.
func TestRequireRole_SegurancaBloqueadaEmDelete(t *testing.T) {
	app := buildTestApp(finderWith(activeUser(entity.RoleSeguranca)), entity.RoleAdministrador, entity.RoleSindico)
	resp := doRequest(t, app, tokenFor(t, testUserID, entity.RoleSeguranca))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Segurança não deve deletar visitas")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Papel desconhecido gravado na base não ganha nenhum privilégio (default-deny).
func TestRequireRole_PapelDesconhecido_Retorna403(t *testing.T) {
	user := activeUser(entity.Role("Porteiro"))
	app := buildTestApp(finderWith(user), entity.RoleAdministrador)

	resp := doRequest(t, app, tokenFor(t, testUserID, "Porteiro"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
