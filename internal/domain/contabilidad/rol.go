// Package contabilidad clasifica las cuentas del paquete PUC frente a los totales de cada
// documento: rol semántico, monto, naturaleza débito/crédito y código de impuesto.
package contabilidad

import (
	"strings"

	"github.com/jhoicas/Contabilizador-api/pkg/texto"
)

// Rol semántico de una línea del paquete.
type Rol int

const (
	RolDesconocido Rol = iota
	RolIngreso
	RolCompra
	RolGasto
	RolImpuesto
	RolReteFuente
	RolReteIVA
	RolReteICA
	RolTotal
)

var nombresRol = [...]string{
	RolDesconocido: "desconocido",
	RolIngreso:     "ingreso",
	RolCompra:      "compra",
	RolGasto:       "gasto",
	RolImpuesto:    "impuesto",
	RolReteFuente:  "retefuente",
	RolReteIVA:     "reteiva",
	RolReteICA:     "reteica",
	RolTotal:       "total",
}

func (r Rol) String() string {
	if r < 0 || int(r) >= len(nombresRol) {
		return nombresRol[RolDesconocido]
	}
	return nombresRol[r]
}

// Clave para la deduplicación por documento: compra y gasto comparten una única base.
func (r Rol) Clave() Rol {
	if r == RolGasto {
		return RolCompra
	}
	return r
}

// Naturaleza lado del asiento.
type Naturaleza int

const (
	Debito Naturaleza = iota + 1
	Credito
)

func (n Naturaleza) String() string {
	switch n {
	case Debito:
		return "debito"
	case Credito:
		return "credito"
	}
	return ""
}

// ParseNaturaleza interpreta la naturaleza declarada en el catálogo ("Débito", "credito", "D", "C").
func ParseNaturaleza(s string) (Naturaleza, bool) {
	n := texto.Normalizar(s)
	switch {
	case n == "d" || strings.HasPrefix(n, "deb"):
		return Debito, true
	case n == "c" || strings.HasPrefix(n, "cred"):
		return Credito, true
	}
	return 0, false
}

// NaturalezaDe lado impuesto por el rol en recibidos; la naturaleza declarada se ignora.
func NaturalezaDe(r Rol) Naturaleza {
	switch r {
	case RolCompra, RolGasto, RolImpuesto:
		return Debito
	case RolIngreso, RolReteFuente, RolReteIVA, RolReteICA, RolTotal:
		return Credito
	}
	return 0
}

// Etiquetas aceptadas en catálogos (normalizadas). Incluye las del modal de emitidos,
// las nativas de recibidos y sinónimos en inglés.
var alias = map[string]string{
	"ingreso":    "ingreso",
	"ingresos":   "ingreso",
	"income":     "ingreso",
	"costo":      "costo",
	"costos":     "costo",
	"cost":       "costo",
	"gasto":      "gasto",
	"gastos":     "gasto",
	"expense":    "gasto",
	"impuestos":  "impuestos",
	"tax":        "impuestos",
	"pago":       "pago",
	"payment":    "pago",
	"otro":       "otro",
	"otros":      "otro",
	"other":      "otro",
	"compra":     "compra",
	"compras":    "compra",
	"impuesto":   "impuesto",
	"iva":        "impuesto",
	"retefuente": "retefuente",
	"reteiva":    "reteiva",
	"reteica":    "reteica",
	"total":      "total",
}

// EtiquetaValida indica si la etiqueta de tipo es reconocida por algún perfil.
func EtiquetaValida(tipo string) bool {
	_, ok := alias[texto.Normalizar(tipo)]
	return ok
}

func canonica(tipo string) string {
	return alias[texto.Normalizar(tipo)]
}

// reglaPrefijo fuerza un rol cuando la cuenta empieza por el prefijo.
type reglaPrefijo struct {
	prefijo string
	rol     Rol
}

// Prefijos PUC. El orden importa: se aplica la primera coincidencia.
var reglasPrefijo = []reglaPrefijo{
	{"51", RolCompra},
	{"61", RolCompra},
	{"2408", RolImpuesto},
	{"2365", RolReteFuente},
	{"2367", RolReteIVA},
	{"2368", RolReteICA},
	{"2205", RolTotal},
	{"2480", RolTotal},
}

// RefinarPorCuenta aplica las reglas de prefijo; si ninguna coincide conserva el rol base.
func RefinarPorCuenta(base Rol, cuenta string) Rol {
	c := strings.TrimSpace(cuenta)
	for _, r := range reglasPrefijo {
		if strings.HasPrefix(c, r.prefijo) {
			return r.rol
		}
	}
	return base
}
