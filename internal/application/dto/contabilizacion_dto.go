package dto

import "github.com/shopspring/decimal"

// LineaCatalogoRequest línea del paquete PUC enviada por el cliente.
type LineaCatalogoRequest struct {
	Cuenta     string `json:"cuenta" yaml:"cuenta"`
	Nombre     string `json:"nombre,omitempty" yaml:"nombre"`
	Tipo       string `json:"tipo" yaml:"tipo"`
	Naturaleza string `json:"naturaleza" yaml:"naturaleza"`
}

// OpcionesRequest opciones de una corrida (formulario multipart o archivo YAML de la CLI).
type OpcionesRequest struct {
	TipoComprobante  int     `json:"tipo_comprobante" yaml:"tipo_comprobante" form:"tipo_comprobante" validate:"gte=0"`
	NombreArchivo    string  `json:"nombre_archivo" yaml:"nombre_archivo" form:"nombre_archivo" validate:"max=200,excludesall=/"`
	Orden            string  `json:"orden" yaml:"orden" form:"orden"`
	Consecutivo      bool    `json:"consecutivo" yaml:"consecutivo" form:"consecutivo"`
	RetefuenteTarifa float64 `json:"retefuente_tarifa" yaml:"retefuente_tarifa" form:"retefuente_tarifa" validate:"gte=0,lte=1"`
	ReteivaPorc      float64 `json:"reteiva_porc" yaml:"reteiva_porc" form:"reteiva_porc" validate:"gte=0,lte=1"`
	ReteicaTarifa    float64 `json:"reteica_tarifa" yaml:"reteica_tarifa" form:"reteica_tarifa" validate:"gte=0,lte=1"`
	CodigoImpuesto   string  `json:"codigo_impuesto" yaml:"codigo_impuesto" form:"codigo_impuesto" validate:"max=20"`
	SinInferirICA    bool    `json:"sin_inferir_ica" yaml:"sin_inferir_ica" form:"sin_inferir_ica"`
}

// ResumenContabilizacion resultado agregado de una corrida.
type ResumenContabilizacion struct {
	Perfil        string             `json:"perfil"`
	NombreArchivo string             `json:"nombre_archivo"`
	Documentos    int                `json:"documentos"`
	Procesados    int                `json:"procesados"`
	Errores       int                `json:"errores"`
	Duplicados    int                `json:"duplicados"`
	Filas         int                `json:"filas"`
	TotalDebito   decimal.Decimal    `json:"total_debito"`
	TotalCredito  decimal.Decimal    `json:"total_credito"`
	Detalle       []DocumentoResumen `json:"detalle"`
	Rechazos      []ErrorDocumento   `json:"rechazos,omitempty"`
}

// DocumentoResumen una fila del detalle por documento contabilizado.
type DocumentoResumen struct {
	Archivo  string          `json:"archivo"`
	Numero   string          `json:"numero"`
	Fecha    string          `json:"fecha"`
	Tercero  string          `json:"tercero"`
	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
	Filas    int             `json:"filas"`
}

// ErrorDocumento documento descartado y el motivo.
type ErrorDocumento struct {
	Archivo string `json:"archivo"`
	Motivo  string `json:"motivo"`
}

// ReporteCatalogo resultado de validar un archivo de paquete PUC.
type ReporteCatalogo struct {
	Total     int                 `json:"total"`
	Validas   int                 `json:"validas"`
	Invalidas int                 `json:"invalidas"`
	Errores   []ErrorFilaCatalogo `json:"errores"`
}

// ErrorFilaCatalogo errores de una fila. Fila cuenta desde 2 (la 1 es el encabezado).
type ErrorFilaCatalogo struct {
	Fila    int      `json:"fila"`
	Codigo  string   `json:"codigo"`
	Errores []string `json:"errores"`
}
