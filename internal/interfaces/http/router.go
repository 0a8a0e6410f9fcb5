package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Contabilizar *contabilizacion.ContabilizarUseCase
	Catalogo     *usecase.CatalogoUseCase
	Defaults     contabilizacion.Defaults
	Logger       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.Logger != nil {
		api.Use(RequestLogger(deps.Logger))
	}

	contab := api.Group("/contabilizacion")
	contabHandler := NewContabilizacionHandler(deps.Contabilizar, deps.Catalogo, deps.Defaults)
	contab.Post("/:perfil", contabHandler.Contabilizar)
	contab.Post("/:perfil/resumen", contabHandler.Resumen)
	contab.Post("/:perfil/resumen.pdf", contabHandler.ResumenPDF)

	catalogoHandler := NewCatalogoHandler(deps.Catalogo)
	api.Post("/catalogo/validar", catalogoHandler.Validar)

	// Empresas y paquetes solo con base de datos
	if deps.Catalogo.ConBaseDatos() {
		api.Get("/empresas", catalogoHandler.ListEmpresas)
		api.Get("/empresas/:id/paquetes", catalogoHandler.ListPaquetes)
		api.Get("/paquetes/:id/cuentas", catalogoHandler.Cuentas)
	}
}
