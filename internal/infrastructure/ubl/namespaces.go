// Package ubl lee documentos electrónicos UBL 2.1 (DIAN) de forma tolerante:
// cada campo se resuelve con una cadena ordenada de estrategias (etiqueta con
// namespace y luego sin él) y gana el primer valor no vacío.
package ubl

// Namespaces UBL 2.1
const (
	NsCbc        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NsCac        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NsDebitNote  = "urn:oasis:names:specification:ubl:schema:xsd:DebitNote-2"
	NsAttached   = "urn:oasis:names:specification:ubl:schema:xsd:AttachedDocument-2"
)

var prefijos = map[string]string{
	"cbc": NsCbc,
	"cac": NsCac,
}
