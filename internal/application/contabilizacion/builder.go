package contabilizacion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/internal/domain/fecha"
)

// Orden de los documentos por fecha.
type Orden string

const (
	OrdenAsc  Orden = "asc"
	OrdenDesc Orden = "desc"
)

// ParseOrden acepta "asc" (por defecto si viene vacío) o "desc".
func ParseOrden(s string) (Orden, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return OrdenAsc, nil
	case "desc":
		return OrdenDesc, nil
	}
	return "", fmt.Errorf("%w: orden %q (use asc o desc)", domain.ErrInvalidInput, s)
}

// Opciones de construcción de filas.
type Opciones struct {
	TipoComprobante int // 0 = el del perfil
	NombreArchivo   string
	Orden           Orden
	Consecutivo     bool
	// CodigoImpuesto override para la línea de IVA de todos los documentos que no traigan uno propio.
	CodigoImpuesto string
}

// Construir ordena los documentos por fecha y genera las filas contables del lote.
// Cada documento recibe un consecutivo (si Consecutivo está activo) y aporta como máximo
// una fila por rol. Retorna domain.ErrEmptyInput si no hay documentos o líneas de catálogo.
func Construir(docs []*entity.Documento, lineas []entity.LineaCatalogo, motor *contabilidad.Motor, op Opciones) ([]entity.FilaContable, error) {
	if len(docs) == 0 || len(lineas) == 0 {
		return nil, domain.ErrEmptyInput
	}
	tipo := op.TipoComprobante
	if tipo == 0 {
		tipo = motor.Perfil().TipoComprobante()
	}

	ordenados := Ordenar(docs, op.Orden)

	var filas []entity.FilaContable
	consecutivo := 1
	for _, d := range ordenados {
		override := d.CodigoImpuesto
		if override == "" {
			override = op.CodigoImpuesto
		}
		num := 0
		if op.Consecutivo {
			num = consecutivo
		}
		filas = append(filas, filasDocumento(d, lineas, motor, tipo, num, override)...)
		if op.Consecutivo {
			consecutivo++
		}
	}
	return filas, nil
}

// Ordenar adjunta la fecha normalizada y ordena de forma estable. Los documentos sin fecha
// reconocible quedan siempre al final, sin importar la dirección.
func Ordenar(docs []*entity.Documento, orden Orden) []*entity.Documento {
	out := make([]*entity.Documento, len(docs))
	copy(out, docs)
	for _, d := range out {
		d.FechaYMD = fecha.Normalizar(d.Header.Fecha)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := fecha.Clave(out[i].FechaYMD), fecha.Clave(out[j].FechaYMD)
		if a == fecha.ClaveSinFecha || b == fecha.ClaveSinFecha {
			return a != fecha.ClaveSinFecha && b == fecha.ClaveSinFecha
		}
		if orden == OrdenDesc {
			return a > b
		}
		return a < b
	})
	return out
}

// filasDocumento recorre el paquete en orden; el conjunto de roles usados es local al documento.
func filasDocumento(d *entity.Documento, lineas []entity.LineaCatalogo, motor *contabilidad.Motor, tipo, consecutivo int, override string) []entity.FilaContable {
	montos := motor.MontosDocumento(d)
	tercero := motor.Tercero(d)
	usados := make(map[contabilidad.Rol]bool, len(lineas))

	var out []entity.FilaContable
	for _, l := range lineas {
		c := motor.Resolver(l, montos, override)
		clave := c.Rol.Clave()
		if usados[clave] || c.Monto.IsZero() {
			continue
		}
		f := entity.FilaContable{
			TipoComprobante: tipo,
			Consecutivo:     consecutivo,
			Fecha:           d.FechaYMD,
			Cuenta:          strings.TrimSpace(l.Cuenta),
			Tercero:         tercero,
			CodigoImpuesto:  c.CodigoImpuesto,
			Debito:          decimal.Zero,
			Credito:         decimal.Zero,
			DocumentoID:     d.ID,
			Rol:             c.Rol.String(),
		}
		if c.Naturaleza == contabilidad.Debito {
			f.Debito = c.Monto
		} else {
			f.Credito = c.Monto
		}
		out = append(out, f)
		usados[clave] = true
	}
	return out
}
