package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
)

// CatalogoHandler validación de archivos PUC y consulta de empresas/paquetes.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Validar godoc
// @Summary      Validar archivo de paquete PUC
// @Tags         catalogo
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo  formData  file  true  "CSV, XLSX, YAML o JSON"
// @Success      200  {object}  dto.ReporteCatalogo
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalogo/validar [post]
func (h *CatalogoHandler) Validar(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return responderError(c, fmt.Errorf("%w: archivo es requerido", domain.ErrInvalidInput))
	}
	data, err := contabilizacion.MultipartFuente{Header: fh}.Leer(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	rep, _, err := h.uc.ValidarArchivo(fh.Filename, data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(rep)
}

// ListEmpresas godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {array}   dto.EmpresaResponse
// @Router       /api/empresas [get]
func (h *CatalogoHandler) ListEmpresas(c *fiber.Ctx) error {
	out, err := h.uc.ListEmpresas(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListPaquetes godoc
// @Summary      Paquetes PUC de una empresa
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {array}   dto.PaqueteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/paquetes [get]
func (h *CatalogoHandler) ListPaquetes(c *fiber.Ctx) error {
	out, err := h.uc.ListPaquetes(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Cuentas godoc
// @Summary      Cuentas de un paquete
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID del paquete"
// @Success      200  {array}   dto.CuentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paquetes/{id}/cuentas [get]
func (h *CatalogoHandler) Cuentas(c *fiber.Ctx) error {
	out, err := h.uc.Cuentas(c.UserContext(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
