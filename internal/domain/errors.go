package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// Por documento: el documento se descarta y se cuenta como error, el lote continúa.
	ErrMalformedDocument = errors.New("documento XML mal formado")
	ErrNoLineItems       = errors.New("el documento no tiene líneas de factura")
	ErrDuplicateDocument = errors.New("documento duplicado en el lote")
	ErrParseTimeout      = errors.New("tiempo de lectura del documento agotado")

	// Estructurales: abortan la exportación completa.
	ErrEmptyInput  = errors.New("no hay documentos o paquete PUC para contabilizar")
	ErrEmptyResult = errors.New("la contabilización no produjo filas")
)
