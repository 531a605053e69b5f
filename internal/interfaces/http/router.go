package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/guardiao/guardiao-api/internal/application/analytics"
	"github.com/guardiao/guardiao-api/internal/application/auth"
	"github.com/guardiao/guardiao-api/internal/application/visits"
	"github.com/guardiao/guardiao-api/internal/domain/entity"
	"github.com/guardiao/guardiao-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	VisitUC     *visits.UseCase
	DashboardUC *analytics.DashboardUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (público)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "timestamp": time.Now().UTC()})
	})

	authHandler := NewAuthHandler(deps.AuthUC)
	visitHandler := NewVisitHandler(deps.VisitUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	authenticated := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authenticated, RequireRole(entity.RoleAdministrador), authHandler.Register)
	authGroup.Get("/me", authenticated, authHandler.Me)

	// Visits (qualquer papel autenticado, exceto delete)
	visitGroup := api.Group("/visits", authenticated)
	visitGroup.Post("/", visitHandler.Create)
	visitGroup.Get("/", visitHandler.List)
	visitGroup.Get("/:id", visitHandler.GetByID)
	visitGroup.Put("/:id", visitHandler.UpdateStatus)
	visitGroup.Delete("/:id", RequireRole(entity.RoleAdministrador, entity.RoleSindico), visitHandler.Delete)

	// Dashboard (qualquer papel autenticado)
	dashboard := api.Group("/dashboard", authenticated)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
