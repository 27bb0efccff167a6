package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FDenisienia/Gestion-ventas/internal/application/auth"
	"github.com/FDenisienia/Gestion-ventas/internal/application/informes"
	"github.com/FDenisienia/Gestion-ventas/internal/application/usecase"
	"github.com/FDenisienia/Gestion-ventas/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC        *usecase.ClienteUseCase
	ArticuloUC       *usecase.ArticuloUseCase
	CategoriaUC      *usecase.CategoriaUseCase
	CategoriaVentaUC *usecase.CategoriaUseCase
	EgresoUC         *usecase.EgresoUseCase
	UsuarioUC        *usecase.UsuarioUseCase
	VentasUC         *ventas.UseCase
	InformesUC       *informes.UseCase
	AuthUC           *auth.UseCase
	AppName          string
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Raíz y health (públicos)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API del sistema de gestión",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":   "/api/auth",
				"health": "/api/health",
			},
		})
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Servidor funcionando correctamente"})
	})

	api := app.Group("/api")

	// Auth: login público, verify detrás del middleware
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentasUC)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/cliente/:clienteId", ventaHandler.ListByCliente)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Put("/:id", ventaHandler.Update)
	ventasGroup.Delete("/:id", ventaHandler.Delete)

	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Post("/", articuloHandler.Create)
	articulos.Put("/:id", articuloHandler.Update)
	articulos.Delete("/:id", articuloHandler.Delete)

	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	categoriasVenta := protected.Group("/categorias-venta")
	categoriaVentaHandler := NewCategoriaHandler(deps.CategoriaVentaUC)
	categoriasVenta.Get("/", categoriaVentaHandler.List)
	categoriasVenta.Get("/:id", categoriaVentaHandler.GetByID)
	categoriasVenta.Post("/", categoriaVentaHandler.Create)
	categoriasVenta.Put("/:id", categoriaVentaHandler.Update)
	categoriasVenta.Delete("/:id", categoriaVentaHandler.Delete)

	egresos := protected.Group("/egresos")
	egresoHandler := NewEgresoHandler(deps.EgresoUC)
	egresos.Get("/", egresoHandler.List)
	egresos.Get("/:id", egresoHandler.GetByID)
	egresos.Post("/", egresoHandler.Create)
	egresos.Put("/:id", egresoHandler.Update)
	egresos.Delete("/:id", egresoHandler.Delete)

	informesGroup := protected.Group("/informes")
	informesHandler := NewInformesHandler(deps.InformesUC)
	informesGroup.Get("/tesoreria", informesHandler.Tesoreria)
	informesGroup.Get("/resumen", informesHandler.Resumen)

	users := protected.Group("/users")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	users.Get("/", RequireAdmin(), usuarioHandler.List)
	users.Get("/:id", usuarioHandler.GetByID)
	users.Post("/", RequireAdmin(), usuarioHandler.Create)
	users.Put("/:id", RequireAdmin(), usuarioHandler.Update)
	users.Delete("/:id", RequireAdmin(), usuarioHandler.Delete)
}
