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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/FDenisienia/Gestion-ventas/internal/application/auth"
	"github.com/FDenisienia/Gestion-ventas/internal/application/informes"
	"github.com/FDenisienia/Gestion-ventas/internal/application/usecase"
	"github.com/FDenisienia/Gestion-ventas/internal/application/ventas"
	"github.com/FDenisienia/Gestion-ventas/internal/infrastructure/jsonstore"
	httpRouter "github.com/FDenisienia/Gestion-ventas/internal/interfaces/http"
	"github.com/FDenisienia/Gestion-ventas/pkg/config"
	"github.com/FDenisienia/Gestion-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	fs := afero.NewOsFs()
	store, err := jsonstore.New(fs, cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de documentos")
	}
	if err := store.MigrarPorDefecto(); err != nil {
		log.Error().Err(err).Msg("migración de la base por defecto")
	}

	userStore := jsonstore.NewUserStore(fs, cfg.Store.Dir)
	if err := userStore.SeedAdmin(cfg.Store.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("siembra del usuario administrador")
	}

	clienteUC := usecase.NewClienteUseCase(store)
	articuloUC := usecase.NewArticuloUseCase(store)
	categoriaUC := usecase.NewCategoriaUseCase(store)
	categoriaVentaUC := usecase.NewCategoriaVentaUseCase(store)
	egresoUC := usecase.NewEgresoUseCase(store)
	usuarioUC := usecase.NewUsuarioUseCase(userStore, store)
	ventasUC := ventas.NewUseCase(store)
	informesUC := informes.NewUseCase(store)
	authUC := auth.NewUseCase(userStore, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión de Ventas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:        clienteUC,
		ArticuloUC:       articuloUC,
		CategoriaUC:      categoriaUC,
		CategoriaVentaUC: categoriaVentaUC,
		EgresoUC:         egresoUC,
		UsuarioUC:        usuarioUC,
		VentasUC:         ventasUC,
		InformesUC:       informesUC,
		AuthUC:           authUC,
		AppName:          cfg.App.Name,
		JWTSecret:        cfg.JWT.Secret,
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
