package http

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContabilizacionHandler recibe lotes de XML por multipart y devuelve el XLSX, el resumen JSON o el PDF.
type ContabilizacionHandler struct {
	uc       *contabilizacion.ContabilizarUseCase
	catalogo *usecase.CatalogoUseCase
	defaults contabilizacion.Defaults
}

// NewContabilizacionHandler construye el handler.
func NewContabilizacionHandler(uc *contabilizacion.ContabilizarUseCase, cat *usecase.CatalogoUseCase, d contabilizacion.Defaults) *ContabilizacionHandler {
	return &ContabilizacionHandler{uc: uc, catalogo: cat, defaults: d}
}

// Contabilizar godoc
// @Summary      Contabilizar lote de facturas
// @Description  Recibe XML UBL (archivos) y el paquete PUC (catalogo JSON, archivo catalogo o paquete_id). Devuelve el XLSX de importación.
// @Tags         contabilizacion
// @Accept       multipart/form-data
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        perfil            path      string  true   "emitidos | recibidos"
// @Param        archivos          formData  file    true   "Facturas XML"
// @Param        catalogo          formData  string  false  "Líneas del paquete en JSON"
// @Param        paquete_id        formData  string  false  "Paquete almacenado"
// @Param        empresa_id        formData  string  false  "Empresa (tarifas por defecto)"
// @Param        orden             formData  string  false  "asc | desc"
// @Param        consecutivo       formData  bool    false  "Autonumerar consecutivo"
// @Param        tipo_comprobante  formData  int     false  "Tipo de comprobante"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/contabilizacion/{perfil} [post]
func (h *ContabilizacionHandler) Contabilizar(c *fiber.Ctx) error {
	sol, err := h.solicitud(c)
	if err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.Contabilizar(c.UserContext(), sol)
	if err != nil {
		return responderError(c, err)
	}
	c.Set("X-Documentos", strconv.Itoa(res.Resumen.Documentos))
	c.Set("X-Errores", strconv.Itoa(res.Resumen.Errores))
	c.Set("X-Duplicados", strconv.Itoa(res.Resumen.Duplicados))
	c.Attachment(res.NombreArchivo)
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	return c.Send(res.Archivo)
}

// Resumen godoc
// @Summary      Resumen de la contabilización (sin XLSX)
// @Tags         contabilizacion
// @Accept       multipart/form-data
// @Produce      json
// @Param        perfil    path      string  true  "emitidos | recibidos"
// @Param        archivos  formData  file    true  "Facturas XML"
// @Success      200  {object}  dto.ResumenContabilizacion
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/contabilizacion/{perfil}/resumen [post]
func (h *ContabilizacionHandler) Resumen(c *fiber.Ctx) error {
	sol, err := h.solicitud(c)
	if err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.Resumir(c.UserContext(), sol)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(res.Resumen)
}

// ResumenPDF godoc
// @Summary      Resumen de la contabilización en PDF
// @Tags         contabilizacion
// @Accept       multipart/form-data
// @Produce      application/pdf
// @Param        perfil    path      string  true  "emitidos | recibidos"
// @Param        archivos  formData  file    true  "Facturas XML"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/contabilizacion/{perfil}/resumen.pdf [post]
func (h *ContabilizacionHandler) ResumenPDF(c *fiber.Ctx) error {
	sol, err := h.solicitud(c)
	if err != nil {
		return responderError(c, err)
	}
	pdf, nombre, err := h.uc.ResumenPDF(c.UserContext(), sol)
	if err != nil {
		return responderError(c, err)
	}
	c.Attachment(nombre)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

func (h *ContabilizacionHandler) solicitud(c *fiber.Ctx) (contabilizacion.Solicitud, error) {
	perfil, err := contabilidad.ParsePerfil(c.Params("perfil"))
	if err != nil {
		return contabilizacion.Solicitud{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	form, err := c.MultipartForm()
	if err != nil {
		return contabilizacion.Solicitud{}, fmt.Errorf("%w: se esperaba multipart/form-data", domain.ErrInvalidInput)
	}
	var in dto.OpcionesRequest
	if err := c.BodyParser(&in); err != nil {
		return contabilizacion.Solicitud{}, fmt.Errorf("%w: opciones: %v", domain.ErrInvalidInput, err)
	}

	lineas, err := h.lineas(c, form)
	if err != nil {
		return contabilizacion.Solicitud{}, err
	}

	defaults := h.defaults
	if id := c.FormValue("empresa_id"); id != "" {
		emp, err := h.catalogo.Empresa(c.UserContext(), id)
		if err != nil {
			return contabilizacion.Solicitud{}, err
		}
		defaults = defaults.ConEmpresa(emp)
	}
	op, tarifas, err := contabilizacion.ResolverOpciones(perfil, in, defaults)
	if err != nil {
		return contabilizacion.Solicitud{}, err
	}

	archivos := append(form.File["archivos"], form.File["archivos[]"]...)
	fuentes := make([]contabilizacion.Fuente, 0, len(archivos))
	for _, fh := range archivos {
		fuentes = append(fuentes, contabilizacion.MultipartFuente{Header: fh})
	}

	return contabilizacion.Solicitud{
		Perfil:   perfil,
		Fuentes:  fuentes,
		Lineas:   lineas,
		Opciones: op,
		Tarifas:  tarifas,
	}, nil
}

// lineas resuelve el paquete: JSON en el campo catalogo, archivo catalogo o paquete_id.
// Sin ninguno retorna nil y el caso de uso responde EmptyInput.
func (h *ContabilizacionHandler) lineas(c *fiber.Ctx, form *multipart.Form) ([]entity.LineaCatalogo, error) {
	if v := form.Value["catalogo"]; len(v) > 0 && v[0] != "" {
		var req []dto.LineaCatalogoRequest
		if err := json.Unmarshal([]byte(v[0]), &req); err != nil {
			return nil, fmt.Errorf("%w: catalogo no es JSON válido", domain.ErrInvalidInput)
		}
		return h.catalogo.Desde(req)
	}
	if fs := form.File["catalogo"]; len(fs) > 0 {
		data, err := contabilizacion.MultipartFuente{Header: fs[0]}.Leer(c.UserContext())
		if err != nil {
			return nil, err
		}
		rep, lineas, err := h.catalogo.ValidarArchivo(fs[0].Filename, data)
		if err != nil {
			return nil, err
		}
		if rep.Invalidas > 0 {
			return nil, fmt.Errorf("%w: el catálogo tiene %d filas inválidas", domain.ErrInvalidInput, rep.Invalidas)
		}
		return lineas, nil
	}
	if id := c.FormValue("paquete_id"); id != "" {
		return h.catalogo.Lineas(c.UserContext(), id)
	}
	return nil, nil
}
