package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/guardiao/guardiao-api/internal/application/analytics"
	"github.com/guardiao/guardiao-api/internal/application/auth"
	"github.com/guardiao/guardiao-api/internal/application/visits"
	"github.com/guardiao/guardiao-api/internal/infrastructure/postgres"
	httpRouter "github.com/guardiao/guardiao-api/internal/interfaces/http"
	"github.com/guardiao/guardiao-api/pkg/config"
	"github.com/guardiao/guardiao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := postgres.RunMigrations(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	dashRepo := postgres.NewDashboardRepository(pool)

	// Contas padrão na primeira execução (idempotente)
	seeder := auth.NewSeeder(userRepo)
	created, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed das contas padrão")
	}
	if created > 0 {
		log.Info().Int("contas", created).Msg("contas padrão criadas")
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	visitUC := visits.NewUseCase(visitRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GUARDIÃO API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		VisitUC:     visitUC,
		DashboardUC: dashboardUC,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
