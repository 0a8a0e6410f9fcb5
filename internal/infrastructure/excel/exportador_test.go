package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/excel"
)

func TestExportar_EncabezadoYFilas(t *testing.T) {
	filas := []entity.FilaContable{
		{TipoComprobante: 3, Consecutivo: 1, Fecha: "2024-01-15", Cuenta: "5105", Tercero: "1020304050",
			Debito: decimal.RequireFromString("100"), Credito: decimal.Zero},
		{TipoComprobante: 3, Fecha: "2024-01-15", Cuenta: "2408", Tercero: "1020304050", CodigoImpuesto: "04",
			Debito: decimal.Zero, Credito: decimal.RequireFromString("19.005")},
	}

	out, err := excel.NewExportador().Exportar(filas, "Recibidos")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Recibidos"}, f.GetSheetList())
	rows, err := f.GetRows("Recibidos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, excel.Encabezados, rows[0])
	assert.Len(t, excel.Encabezados, 27)

	assert.Equal(t, "3", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "2024-01-15", rows[1][2])
	assert.Equal(t, "5105", rows[1][5])
	assert.Equal(t, "1020304050", rows[1][6])
	assert.Equal(t, "100.00", rows[1][21])
	assert.Equal(t, "0.00", rows[1][22])

	assert.Equal(t, "", rows[2][1], "sin consecutivo la celda queda vacía")
	assert.Equal(t, "04", rows[2][16])
	assert.Equal(t, "19.01", rows[2][22])

	ancho, err := f.GetColWidth("Recibidos", "F")
	require.NoError(t, err)
	assert.Equal(t, float64(20), ancho)
}

func TestExportar_SinFilas(t *testing.T) {
	_, err := excel.NewExportador().Exportar(nil, "Contabilización")
	assert.ErrorIs(t, err, domain.ErrEmptyResult)
}
