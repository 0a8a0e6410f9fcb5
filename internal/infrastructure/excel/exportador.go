// Package excel serializa las filas contables al formato de importación XLSX.
//
// Solo se diligencian tipo de comprobante, consecutivo, fecha, cuenta, tercero,
// código de impuesto, débito y crédito; el resto de columnas quedan vacías
// porque el formato de destino las exige.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

// Encabezados del formato de importación (27 columnas). "Consecutivo" aparece dos veces.
var Encabezados = []string{
	"Tipo de comprobante", "Consecutivo", "Fecha de elaboración", "Sigla moneda", "Tasa de cambio",
	"Código cuenta contable", "Identificación tercero", "Sucursal", "Código producto", "Código de bodega",
	"Acción", "Cantidad producto", "Prefijo", "Consecutivo", "No. cuota", "Fecha vencimiento",
	"Código impuesto", "Código grupo activo fijo", "Código activo fijo", "Descripción",
	"Código centro/subcentro de costos", "Débito", "Crédito", "Observaciones",
	"Base gravable libro compras/ventas", "Base exenta libro compras/ventas", "Mes de cierre",
}

// Índices (base 0) de las columnas diligenciadas.
const (
	colTipo        = 0
	colConsecutivo = 1
	colFecha       = 2
	colCuenta      = 5
	colTercero     = 6
	colImpuesto    = 16
	colDebito      = 21
	colCredito     = 22
)

const (
	anchoDefecto = 12
	formatoPesos = "#,##0.00"
)

var anchos = map[int]float64{
	colTipo:        18,
	colConsecutivo: 14,
	colFecha:       16,
	colCuenta:      20,
	colTercero:     18,
	colDebito:      14,
	colCredito:     14,
}

// Exportador implementa contabilizacion.Exportador con excelize.
type Exportador struct{}

// NewExportador construye el exportador.
func NewExportador() *Exportador { return &Exportador{} }

// Exportar escribe una hoja con el encabezado y una fila por asiento.
// Retorna domain.ErrEmptyResult si no hay filas.
func (e *Exportador) Exportar(filas []entity.FilaContable, hoja string) ([]byte, error) {
	if len(filas) == 0 {
		return nil, domain.ErrEmptyResult
	}
	if hoja == "" {
		hoja = "Contabilización"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), hoja); err != nil {
		return nil, fmt.Errorf("excel: nombrar hoja: %w", err)
	}
	fmtPesos := formatoPesos
	estilo, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtPesos})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo moneda: %w", err)
	}

	sw, err := f.NewStreamWriter(hoja)
	if err != nil {
		return nil, fmt.Errorf("excel: stream: %w", err)
	}
	// los anchos deben fijarse antes de la primera fila
	for i := range Encabezados {
		ancho, ok := anchos[i]
		if !ok {
			ancho = anchoDefecto
		}
		if err := sw.SetColWidth(i+1, i+1, ancho); err != nil {
			return nil, fmt.Errorf("excel: ancho columna %d: %w", i+1, err)
		}
	}

	header := make([]interface{}, len(Encabezados))
	for i, h := range Encabezados {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}

	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(celda, valores(fila, estilo)); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("excel: flush: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// valores arma la fila; nil deja la celda vacía.
func valores(f entity.FilaContable, estilo int) []interface{} {
	out := make([]interface{}, len(Encabezados))
	out[colTipo] = f.TipoComprobante
	if f.Consecutivo > 0 {
		out[colConsecutivo] = f.Consecutivo
	}
	if f.Fecha != "" {
		out[colFecha] = f.Fecha
	}
	out[colCuenta] = f.Cuenta
	if f.Tercero != "" {
		out[colTercero] = f.Tercero
	}
	if f.CodigoImpuesto != "" {
		out[colImpuesto] = f.CodigoImpuesto
	}
	out[colDebito] = excelize.Cell{StyleID: estilo, Value: f.Debito.Round(2).InexactFloat64()}
	out[colCredito] = excelize.Cell{StyleID: estilo, Value: f.Credito.Round(2).InexactFloat64()}
	return out
}
