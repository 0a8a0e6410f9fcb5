package repository

import (
	"context"

	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

// CatalogoRepository fuente de solo lectura de empresas y paquetes PUC.
// Get* retornan domain.ErrNotFound si el recurso no existe.
type CatalogoRepository interface {
	ListEmpresas(ctx context.Context) ([]*entity.Empresa, error)
	GetEmpresa(ctx context.Context, id string) (*entity.Empresa, error)
	ListPaquetes(ctx context.Context, empresaID string) ([]*entity.Paquete, error)
	// GetLineas devuelve las cuentas del paquete ordenadas por orden.
	GetLineas(ctx context.Context, paqueteID string) ([]entity.LineaCatalogo, error)
}
