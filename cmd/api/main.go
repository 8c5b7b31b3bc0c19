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

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/application/session"
	"github.com/jhoicas/zapshop-api/internal/domain/repository"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/memory"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/postgres"
	"github.com/jhoicas/zapshop-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/zapshop-api/internal/interfaces/http"
	"github.com/jhoicas/zapshop-api/pkg/config"
	"github.com/jhoicas/zapshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	var (
		customerRepo repository.CustomerRepository
		userRepo     repository.UserRepository
	)
	switch cfg.Store.Driver {
	case config.StorePostgres:
		if cfg.Store.MigrateOnStart {
			if err := postgres.Migrate(cfg.DB.ConnectionString(), "up"); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		customerRepo = postgres.NewCustomerRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	default:
		log.Warn().Msg("directorios en memoria: los datos se pierden al reiniciar")
		customerRepo = memory.NewCustomerRepository()
		userRepo = memory.NewUserRepository()
		if cfg.Store.SeedFile != "" {
			f, err := seed.Load(cfg.Store.SeedFile)
			if err != nil {
				log.Fatal().Err(err).Msg("SEED_FILE")
			}
			res, err := seed.Apply(context.Background(), f, customerRepo, userRepo, cfg.Auth.AvatarBaseURL)
			if err != nil {
				log.Fatal().Err(err).Msg("SEED_FILE")
			}
			log.Info().Int("creados", res.Created).Int("omitidos", res.Skipped).Str("file", cfg.Store.SeedFile).Msg("directorios precargados")
		}
	}

	forms := auth.NewFormRegistry(customerRepo, userRepo,
		auth.FixedLatency{Delay: cfg.Auth.SubmitDelay()}, cfg.Auth.FormTTL())
	sessions := session.NewService(customerRepo, userRepo, session.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.AvatarBaseURL, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mari Zap Shop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Forms:    forms,
		Sessions: sessions,
		Log:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
