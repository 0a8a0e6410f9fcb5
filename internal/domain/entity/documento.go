package entity

import "github.com/shopspring/decimal"

// Documento factura electrónica (Invoice, CreditNote o DebitNote) leída desde XML UBL.
// Se crea en cada lectura y no se modifica después, salvo FechaYMD que se adjunta al ordenar.
type Documento struct {
	ID      string
	Archivo string
	Tipo    string // raíz UBL: Invoice, CreditNote, DebitNote
	Header  Encabezado
	Items   []Item
	Totales Totales
	// Declarados son los totales de cac:LegalMonetaryTotal. Payable alimenta la inferencia de ReteICA.
	Declarados TotalesDeclarados
	// CodigoImpuesto reemplaza el código de impuesto de la línea de IVA descontable (solo recibidos).
	CodigoImpuesto string
	Huella         string // BLAKE2b-256 de la forma canónica, para detectar duplicados
	FechaYMD       string
	Raw            string
}

// Encabezado datos generales del documento.
type Encabezado struct {
	Numero    string
	Fecha     string // texto tal como viene en cbc:IssueDate
	Moneda    string
	CUFE      string
	Proveedor Parte
	Cliente   Parte
}

// Parte emisor o adquiriente del documento.
type Parte struct {
	Nombre   string
	TipoID   string // schemeName (31 = NIT, 13 = CC, ...)
	NumeroID string
	DV       string
}

// Item línea de factura.
type Item struct {
	Descripcion    string
	Cantidad       decimal.Decimal
	PorcentajeIVA  decimal.Decimal
	PrecioUnitario decimal.Decimal
	Base           decimal.Decimal
	Total          decimal.Decimal
}

// Totales calculados a partir de las líneas. Total = Subtotal + IVA.
type Totales struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// TotalesDeclarados montos tal como los declara el emisor.
type TotalesDeclarados struct {
	LineExtension decimal.Decimal
	TaxExclusive  decimal.Decimal
	TaxInclusive  decimal.Decimal
	Payable       decimal.Decimal
}

// TieneItems indica si el documento trae al menos una línea.
func (d *Documento) TieneItems() bool {
	return len(d.Items) > 0
}
