package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/internal/domain/repository"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/catalogo"
)

// CatalogoUseCase resuelve paquetes PUC desde archivos, la petición o la base de datos.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository // nil = sin base de datos
}

// NewCatalogoUseCase construye el caso de uso. repo puede ser nil.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// ConBaseDatos indica si hay una fuente Postgres configurada.
func (uc *CatalogoUseCase) ConBaseDatos() bool { return uc.repo != nil }

// ValidarArchivo lee un archivo CSV/XLSX/YAML/JSON y devuelve el reporte y las líneas válidas.
func (uc *CatalogoUseCase) ValidarArchivo(nombre string, data []byte) (dto.ReporteCatalogo, []entity.LineaCatalogo, error) {
	regs, err := catalogo.Leer(nombre, data)
	if err != nil {
		return dto.ReporteCatalogo{}, nil, err
	}
	rep, lineas := catalogo.Validar(regs)
	return rep, lineas, nil
}

// Desde líneas enviadas en la petición. Falla con domain.ErrInvalidInput si alguna es inválida.
func (uc *CatalogoUseCase) Desde(lineas []dto.LineaCatalogoRequest) ([]entity.LineaCatalogo, error) {
	rep, out := catalogo.Validar(catalogo.DesdeRequest(lineas))
	if rep.Invalidas > 0 {
		e := rep.Errores[0]
		return nil, fmt.Errorf("%w: catálogo fila %d (%s): %v", domain.ErrInvalidInput, e.Fila, e.Codigo, e.Errores)
	}
	return out, nil
}

// Lineas cuentas de un paquete almacenado.
func (uc *CatalogoUseCase) Lineas(ctx context.Context, paqueteID string) ([]entity.LineaCatalogo, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("%w: paquete_id requiere base de datos configurada", domain.ErrInvalidInput)
	}
	return uc.repo.GetLineas(ctx, paqueteID)
}

// Empresa obtiene la empresa (para sus tarifas por defecto). Sin base de datos retorna nil.
func (uc *CatalogoUseCase) Empresa(ctx context.Context, id string) (*entity.Empresa, error) {
	if uc.repo == nil || id == "" {
		return nil, nil
	}
	return uc.repo.GetEmpresa(ctx, id)
}

// ListEmpresas lista las empresas registradas.
func (uc *CatalogoUseCase) ListEmpresas(ctx context.Context) ([]dto.EmpresaResponse, error) {
	if uc.repo == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListEmpresas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		out = append(out, entityToEmpresaResponse(e))
	}
	return out, nil
}

// ListPaquetes paquetes de la empresa. Valida que la empresa exista.
func (uc *CatalogoUseCase) ListPaquetes(ctx context.Context, empresaID string) ([]dto.PaqueteResponse, error) {
	if uc.repo == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.repo.GetEmpresa(ctx, empresaID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListPaquetes(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaqueteResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PaqueteResponse{
			ID: p.ID, EmpresaID: p.EmpresaID, Nombre: p.Nombre, Descripcion: p.Descripcion, CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

// Cuentas del paquete para la API.
func (uc *CatalogoUseCase) Cuentas(ctx context.Context, paqueteID string) ([]dto.CuentaResponse, error) {
	if uc.repo == nil {
		return nil, domain.ErrNotFound
	}
	lineas, err := uc.repo.GetLineas(ctx, paqueteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CuentaResponse, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, dto.CuentaResponse{Cuenta: l.Cuenta, Nombre: l.Nombre, Tipo: l.Tipo, Naturaleza: l.Naturaleza, Orden: l.Orden})
	}
	return out, nil
}

func entityToEmpresaResponse(e *entity.Empresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		ID:               e.ID,
		Nombre:           e.Nombre,
		NIT:              e.NIT,
		Codigo:           e.Codigo,
		Estado:           e.Estado,
		RetefuenteTarifa: e.RetefuenteTarifa,
		ReteivaPorc:      e.ReteivaPorc,
		ReteicaTarifa:    e.ReteicaTarifa,
		CreatedAt:        e.CreatedAt,
	}
}
