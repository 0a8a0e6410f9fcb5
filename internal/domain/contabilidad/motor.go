package contabilidad

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/pkg/texto"
)

// Códigos de la columna "Código impuesto".
const (
	CodigoIVADescontable = "04"
	CodigoReteFuente     = "03"
	CodigoReteIVA        = "04"
	CodigoReteICA        = "05"
)

// toleranciaICA diferencia mínima (subtotal + IVA - total) para inferir ReteICA.
var toleranciaICA = decimal.RequireFromString("0.01")

// Tarifas de retención del perfil recibidos. Una tarifa en cero no genera la fila.
type Tarifas struct {
	ReteFuente decimal.Decimal // sobre el subtotal, ej. 0.025
	ReteIVA    decimal.Decimal // fracción del IVA, ej. 0.15
	ReteICA    decimal.Decimal // sobre el subtotal, ej. 0.00966
	// InferirICA toma subtotal + IVA - total como ReteICA cuando no hay tarifa configurada.
	InferirICA bool
}

// Montos calculados una sola vez por documento.
type Montos struct {
	Subtotal   decimal.Decimal
	IVA        decimal.Decimal
	Total      decimal.Decimal
	ReteFuente decimal.Decimal
	ReteIVA    decimal.Decimal
	ReteICA    decimal.Decimal
	Neto       decimal.Decimal
}

// Candidato resultado de clasificar una línea del paquete para un documento.
type Candidato struct {
	Rol            Rol
	Naturaleza     Naturaleza
	Monto          decimal.Decimal
	CodigoImpuesto string
}

// Motor de clasificación para un perfil.
type Motor struct {
	perfil  Perfil
	tarifas Tarifas
}

// NewMotorEmitidos motor simple: sin retenciones.
func NewMotorEmitidos() *Motor {
	return &Motor{perfil: PerfilEmitidos}
}

// NewMotorRecibidos motor con retenciones según las tarifas dadas.
func NewMotorRecibidos(t Tarifas) *Motor {
	return &Motor{perfil: PerfilRecibidos, tarifas: t}
}

// NewMotor construye el motor del perfil; las tarifas solo aplican a recibidos.
func NewMotor(p Perfil, t Tarifas) *Motor {
	if p == PerfilRecibidos {
		return NewMotorRecibidos(t)
	}
	return NewMotorEmitidos()
}

func (m *Motor) Perfil() Perfil { return m.perfil }

// Rol resuelve el rol de la línea: etiqueta declarada y luego prefijo de la cuenta.
func (m *Motor) Rol(l entity.LineaCatalogo) Rol {
	return RefinarPorCuenta(m.rolBase(l.Tipo), l.Cuenta)
}

func (m *Motor) rolBase(tipo string) Rol {
	switch canonica(tipo) {
	case "compra":
		return RolCompra
	case "impuesto", "impuestos":
		return RolImpuesto
	case "retefuente":
		return RolReteFuente
	case "reteiva":
		return RolReteIVA
	case "reteica":
		return RolReteICA
	case "total", "pago":
		return RolTotal
	case "costo":
		return RolCompra
	case "ingreso":
		if m.perfil == PerfilRecibidos {
			return RolCompra
		}
		return RolIngreso
	case "gasto":
		return RolGasto
	}
	// otro o etiqueta desconocida
	if m.perfil == PerfilRecibidos {
		return RolGasto
	}
	return RolDesconocido
}

// Montos calcula retenciones y neto a partir de los totales del documento.
// Sin valor pagado declarado, la inferencia de ReteICA compara contra Totales.Total.
func (m *Motor) Montos(t entity.Totales) Montos {
	return m.montos(t, t.Total)
}

// MontosDocumento igual que Montos, pero la ReteICA inferida sale de la diferencia
// entre el bruto y el PayableAmount declarado (el total calculado nunca la trae).
func (m *Motor) MontosDocumento(d *entity.Documento) Montos {
	pagado := d.Totales.Total
	if d.Declarados.Payable.IsPositive() {
		pagado = d.Declarados.Payable
	}
	return m.montos(d.Totales, pagado)
}

func (m *Motor) montos(t entity.Totales, pagado decimal.Decimal) Montos {
	out := Montos{Subtotal: t.Subtotal, IVA: t.IVA, Total: t.Total, Neto: t.Total}
	if m.perfil != PerfilRecibidos {
		return out
	}
	out.ReteFuente = sobre(t.Subtotal, m.tarifas.ReteFuente)
	out.ReteIVA = sobre(t.IVA, m.tarifas.ReteIVA)
	base := t.Total
	if !m.tarifas.ReteICA.IsZero() {
		out.ReteICA = sobre(t.Subtotal, m.tarifas.ReteICA)
	} else if m.tarifas.InferirICA {
		out.ReteICA = InferirReteICA(entity.Totales{Subtotal: t.Subtotal, IVA: t.IVA, Total: pagado})
		if !out.ReteICA.IsZero() {
			// el total ya viene neto de ICA: se parte del bruto para que el asiento cuadre
			base = t.Subtotal.Add(t.IVA)
		}
	}
	neto := round2(base.Sub(out.ReteFuente.Add(out.ReteIVA).Add(out.ReteICA)))
	if neto.IsNegative() {
		neto = decimal.Zero
	}
	out.Neto = neto
	return out
}

// InferirReteICA aproxima la ReteICA cuando el total del documento ya la descuenta:
// subtotal + IVA - total, si supera 0.01. Es una heurística; se desactiva con Tarifas.InferirICA.
func InferirReteICA(t entity.Totales) decimal.Decimal {
	delta := round2(t.Subtotal.Add(t.IVA).Sub(t.Total))
	if delta.GreaterThan(toleranciaICA) {
		return delta
	}
	return decimal.Zero
}

// Monto requerido por el rol en este perfil. Cero significa que la fila no se genera.
func (m *Motor) Monto(r Rol, mm Montos) decimal.Decimal {
	if m.perfil == PerfilRecibidos {
		switch r {
		case RolCompra, RolGasto, RolIngreso:
			return mm.Subtotal
		case RolImpuesto:
			return mm.IVA
		case RolReteFuente:
			return mm.ReteFuente
		case RolReteIVA:
			return mm.ReteIVA
		case RolReteICA:
			return mm.ReteICA
		case RolTotal:
			return mm.Neto
		}
		return decimal.Zero
	}
	switch r {
	case RolIngreso, RolCompra, RolGasto:
		return mm.Subtotal
	case RolImpuesto:
		return mm.IVA
	case RolTotal:
		return mm.Total
	}
	return decimal.Zero
}

// Resolver clasifica la línea para el documento cuyos montos se pasan.
// override es el código de impuesto del documento para la línea de IVA.
func (m *Motor) Resolver(l entity.LineaCatalogo, mm Montos, override string) Candidato {
	rol := m.Rol(l)
	return Candidato{
		Rol:            rol,
		Naturaleza:     m.Naturaleza(rol, l.Naturaleza),
		Monto:          m.Monto(rol, mm),
		CodigoImpuesto: CodigoImpuesto(rol, override),
	}
}

// Naturaleza lado del asiento para el rol. En recibidos se impone la del rol; en emitidos
// manda la declarada en el catálogo, salvo costo y gasto que siempre van al débito.
func (m *Motor) Naturaleza(r Rol, declarada string) Naturaleza {
	if m.perfil == PerfilRecibidos {
		return NaturalezaDe(r)
	}
	switch r {
	case RolCompra, RolGasto:
		return Debito
	}
	if n, ok := ParseNaturaleza(declarada); ok {
		return n
	}
	return naturalezaEmitidos(r)
}

// naturalezaEmitidos respaldo cuando la línea no declara naturaleza: ingreso e IVA
// generado al crédito, cuenta por cobrar al débito.
func naturalezaEmitidos(r Rol) Naturaleza {
	switch r {
	case RolIngreso, RolImpuesto:
		return Credito
	case RolTotal:
		return Debito
	}
	return NaturalezaDe(r)
}

// Tercero identificación que va en la columna "Identificación tercero":
// el cliente en emitidos, el proveedor en recibidos.
func (m *Motor) Tercero(d *entity.Documento) string {
	if m.perfil == PerfilRecibidos {
		return d.Header.Proveedor.NumeroID
	}
	return d.Header.Cliente.NumeroID
}

// CodigoImpuesto código por rol; solo el IVA descontable admite override.
func CodigoImpuesto(r Rol, override string) string {
	switch r {
	case RolImpuesto:
		if noAplica(override) {
			return CodigoIVADescontable
		}
		return strings.TrimSpace(override)
	case RolReteFuente:
		return CodigoReteFuente
	case RolReteIVA:
		return CodigoReteIVA
	case RolReteICA:
		return CodigoReteICA
	}
	return ""
}

func noAplica(s string) bool {
	switch texto.Normalizar(s) {
	case "", "n/a", "na", "no aplica", "no_aplica", "-":
		return true
	}
	return false
}

func sobre(base, tarifa decimal.Decimal) decimal.Decimal {
	if base.IsZero() || tarifa.IsZero() {
		return decimal.Zero
	}
	return round2(base.Mul(tarifa))
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
