package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Contabilizador-api/docs"
	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/internal/domain/repository"
	infracache "github.com/jhoicas/Contabilizador-api/internal/infrastructure/cache"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Contabilizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/Contabilizador-api/internal/interfaces/http"
	"github.com/jhoicas/Contabilizador-api/pkg/config"
	"github.com/jhoicas/Contabilizador-api/pkg/logger"
)

// @title        Contabilizador API
// @version      1.0
// @description  Convierte facturas electrónicas UBL 2.1 (DIAN) en asientos contables para importar en XLSX.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Postgres es opcional: sin DB los paquetes PUC llegan en cada petición.
	var catalogoRepo repository.CatalogoRepository
	if cfg.DB.Enabled() {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		catalogoRepo = infracache.NewCatalogoCache(postgres.NewCatalogoRepository(pool), cfg.Cache.TTL, cfg.Cache.Cleanup)
	} else {
		log.Warn().Msg("sin base de datos: endpoints de empresas y paquete_id deshabilitados")
	}

	contabilizarUC := contabilizacion.NewContabilizarUseCase(
		ubl.NewParser(),
		excel.NewExportador(),
		infrapdf.NewResumenGenerator(),
		log,
		contabilizacion.Config{
			Workers:          cfg.Contabilidad.Workers,
			TimeoutDocumento: cfg.Contabilidad.TimeoutDocumento,
		},
	)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contabilizador API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": cfg.DB.Enabled()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Contabilizar: contabilizarUC,
		Catalogo:     catalogoUC,
		Defaults:     contabilizacion.DefaultsDe(cfg.Contabilidad),
		Logger:       log,
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
