package entity

import "github.com/shopspring/decimal"

// FilaContable una fila del archivo de importación. Exactamente uno de Debito/Credito es distinto de cero.
type FilaContable struct {
	TipoComprobante int
	Consecutivo     int // 0 = sin consecutivo
	Fecha           string
	Cuenta          string
	Tercero         string
	CodigoImpuesto  string
	Debito          decimal.Decimal
	Credito         decimal.Decimal

	DocumentoID string
	Rol         string
}
