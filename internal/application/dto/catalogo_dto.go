package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmpresaResponse empresa con sus tarifas por defecto para recibidos.
type EmpresaResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	NIT              string          `json:"nit"`
	Codigo           string          `json:"codigo"`
	Estado           string          `json:"estado"`
	RetefuenteTarifa decimal.Decimal `json:"retefuente_tarifa"`
	ReteivaPorc      decimal.Decimal `json:"reteiva_porc"`
	ReteicaTarifa    decimal.Decimal `json:"reteica_tarifa"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PaqueteResponse paquete PUC de una empresa.
type PaqueteResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresa_id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CuentaResponse cuenta del paquete en el orden de evaluación.
type CuentaResponse struct {
	Cuenta     string `json:"cuenta"`
	Nombre     string `json:"nombre,omitempty"`
	Tipo       string `json:"tipo"`
	Naturaleza string `json:"naturaleza"`
	Orden      int    `json:"orden"`
}
