package contabilidad

import (
	"fmt"
	"time"

	"github.com/jhoicas/Contabilizador-api/pkg/texto"
)

// Perfil variante del motor: facturas emitidas a clientes o recibidas de proveedores.
type Perfil int

const (
	PerfilEmitidos Perfil = iota + 1
	PerfilRecibidos
)

func (p Perfil) String() string {
	switch p {
	case PerfilEmitidos:
		return "emitidos"
	case PerfilRecibidos:
		return "recibidos"
	}
	return ""
}

// ParsePerfil acepta "emitidos"/"recibidos" (y sus equivalentes en inglés).
func ParsePerfil(s string) (Perfil, error) {
	switch texto.Normalizar(s) {
	case "emitidos", "emitido", "issued":
		return PerfilEmitidos, nil
	case "recibidos", "recibido", "received":
		return PerfilRecibidos, nil
	}
	return 0, fmt.Errorf("perfil desconocido %q", s)
}

// TipoComprobante por defecto del perfil.
func (p Perfil) TipoComprobante() int {
	if p == PerfilRecibidos {
		return 4
	}
	return 3
}

// Hoja nombre de la hoja del libro exportado.
func (p Perfil) Hoja() string {
	if p == PerfilRecibidos {
		return "Recibidos"
	}
	return "Contabilización"
}

// NombreArchivo nombre por defecto del XLSX para la fecha dada (UTC).
func (p Perfil) NombreArchivo(t time.Time) string {
	dia := t.UTC().Format("2006-01-02")
	if p == PerfilRecibidos {
		return "contabilizacion_recibidos_" + dia + ".xlsx"
	}
	return "contabilizacion_" + dia + ".xlsx"
}
