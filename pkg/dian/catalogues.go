// Package dian contiene catálogos y validaciones alineados al Anexo Técnico
// de Factura Electrónica DIAN (Colombia) usados al leer documentos recibidos y emitidos.
package dian

// =============================================================================
// Tabla 3 - Tipos de documento de identificación (Anexo 1.9 - 13.2.1)
// Llega en el atributo schemeName de cbc:CompanyID / cbc:ID.
// =============================================================================

const (
	TipoDocumentoRegistroCivil      = "11"
	TipoDocumentoTarjetaIdentidad   = "12"
	TipoDocumentoCC                 = "13"
	TipoDocumentoTarjetaExtranjeria = "21"
	TipoDocumentoCedulaExtranjeria  = "22"
	TipoDocumentoNIT                = "31"
	TipoDocumentoPasaporte          = "41"
	TipoDocumentoExtranjero         = "42"
	TipoDocumentoPEP                = "47"
	TipoDocumentoNITOtroPais        = "50"
	TipoDocumentoNUIP               = "91"
)

var nombresTipoDocumento = map[string]string{
	TipoDocumentoRegistroCivil:      "Registro civil",
	TipoDocumentoTarjetaIdentidad:   "Tarjeta de identidad",
	TipoDocumentoCC:                 "Cédula de ciudadanía",
	TipoDocumentoTarjetaExtranjeria: "Tarjeta de extranjería",
	TipoDocumentoCedulaExtranjeria:  "Cédula de extranjería",
	TipoDocumentoNIT:                "NIT",
	TipoDocumentoPasaporte:          "Pasaporte",
	TipoDocumentoExtranjero:         "Documento de identificación extranjero",
	TipoDocumentoPEP:                "PEP",
	TipoDocumentoNITOtroPais:        "NIT de otro país",
	TipoDocumentoNUIP:               "NUIP",
}

// NombreTipoDocumento devuelve la descripción del código; si no es conocido retorna el mismo código.
func NombreTipoDocumento(codigo string) string {
	if n, ok := nombresTipoDocumento[codigo]; ok {
		return n
	}
	return codigo
}

// =============================================================================
// Tipos de documento electrónico (cbc:InvoiceTypeCode / raíz UBL)
// =============================================================================

const (
	DocumentoFactura     = "Invoice"
	DocumentoNotaCredito = "CreditNote"
	DocumentoNotaDebito  = "DebitNote"
	DocumentoAdjunto     = "AttachedDocument"
)
