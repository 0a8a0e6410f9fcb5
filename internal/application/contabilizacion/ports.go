package contabilizacion

import (
	"context"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

// Fuente origen de un documento: archivo en disco, parte multipart o bytes en memoria.
type Fuente interface {
	Nombre() string
	Leer(ctx context.Context) ([]byte, error)
}

// DocumentParser convierte el XML crudo en un documento (implementado por infrastructure/ubl).
type DocumentParser interface {
	Parse(archivo string, raw []byte) (*entity.Documento, error)
}

// Exportador serializa las filas al archivo tabular (implementado por infrastructure/excel).
type Exportador interface {
	Exportar(filas []entity.FilaContable, hoja string) ([]byte, error)
}

// ReporteGenerator genera el resumen de la corrida en PDF (implementado por infrastructure/pdf).
type ReporteGenerator interface {
	GenerarResumen(ctx context.Context, resumen *dto.ResumenContabilizacion) ([]byte, error)
}
