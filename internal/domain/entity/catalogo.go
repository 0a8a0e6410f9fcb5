package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaCatalogo cuenta del paquete PUC seleccionado. El orden del paquete importa:
// ante dos líneas con el mismo rol gana la primera.
type LineaCatalogo struct {
	Cuenta     string
	Nombre     string
	Tipo       string // etiqueta declarada: ingreso, costo, gasto, impuestos, pago, otro, retefuente...
	Naturaleza string // declarada: debito / credito (en recibidos la impone el rol)
	Orden      int
}

// Empresa cliente del contabilizador. Las tarifas son los valores por defecto para recibidos.
type Empresa struct {
	ID               string
	Nombre           string
	NIT              string
	Codigo           string
	Estado           string // activa, vencida, expirada
	RetefuenteTarifa decimal.Decimal
	ReteivaPorc      decimal.Decimal
	ReteicaTarifa    decimal.Decimal
	CreatedAt        time.Time
}

// Paquete conjunto ordenado de cuentas PUC de una empresa.
type Paquete struct {
	ID          string
	EmpresaID   string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
}
