package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/pdf"
)

func TestGenerarResumen(t *testing.T) {
	r := &dto.ResumenContabilizacion{
		Perfil:        "recibidos",
		NombreArchivo: "contabilizacion_recibidos_2024-01-31.xlsx",
		Documentos:    3, Procesados: 2, Errores: 1, Filas: 6,
		TotalDebito:  decimal.RequireFromString("1190"),
		TotalCredito: decimal.RequireFromString("1190"),
		Detalle: []dto.DocumentoResumen{
			{Archivo: "a.xml", Numero: "FE1", Fecha: "2024-01-02", Tercero: "800197268",
				Subtotal: decimal.RequireFromString("1000"), IVA: decimal.RequireFromString("190"),
				Total: decimal.RequireFromString("1190"), Filas: 3},
		},
		Rechazos: []dto.ErrorDocumento{{Archivo: "b.xml", Motivo: "documento XML mal formado"}},
	}

	out, err := pdf.NewResumenGenerator().GenerarResumen(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerarResumen_Nil(t *testing.T) {
	_, err := pdf.NewResumenGenerator().GenerarResumen(context.Background(), nil)
	assert.Error(t, err)
}
