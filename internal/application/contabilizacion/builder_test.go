package contabilizacion_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func documento(id, fecha, sub, iva, total string) *entity.Documento {
	return &entity.Documento{
		ID:      id,
		Archivo: id + ".xml",
		Header: entity.Encabezado{
			Numero:    id,
			Fecha:     fecha,
			Proveedor: entity.Parte{NumeroID: "800197268", TipoID: "31", DV: "4"},
			Cliente:   entity.Parte{NumeroID: "1020304050", TipoID: "13"},
		},
		Items:   []entity.Item{{Descripcion: "x", Cantidad: dec("1"), Base: dec(sub)}},
		Totales: entity.Totales{Subtotal: dec(sub), IVA: dec(iva), Total: dec(total)},
	}
}

func paquete(lineas ...[3]string) []entity.LineaCatalogo {
	out := make([]entity.LineaCatalogo, 0, len(lineas))
	for i, l := range lineas {
		out = append(out, entity.LineaCatalogo{Cuenta: l[0], Tipo: l[1], Naturaleza: l[2], Orden: i})
	}
	return out
}

func TestConstruir_EmitidosCostoImpuestoPago(t *testing.T) {
	docs := []*entity.Documento{documento("FE1", "2024-01-15", "100", "19", "119")}
	lineas := paquete(
		[3]string{"5105", "costo", "debito"},
		[3]string{"2408", "impuestos", "debito"},
		[3]string{"2205", "pago", "credito"},
	)

	filas, err := contabilizacion.Construir(docs, lineas, contabilidad.NewMotorEmitidos(), contabilizacion.Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 3)

	assert.Equal(t, "5105", filas[0].Cuenta)
	assert.Equal(t, "100.00", filas[0].Debito.StringFixed(2))
	assert.True(t, filas[0].Credito.IsZero())

	assert.Equal(t, "2408", filas[1].Cuenta)
	assert.Equal(t, "19.00", filas[1].Debito.StringFixed(2))

	assert.Equal(t, "2205", filas[2].Cuenta)
	assert.Equal(t, "119.00", filas[2].Credito.StringFixed(2))
	assert.True(t, filas[2].Debito.IsZero())

	balanceado(t, filas)
	for _, f := range filas {
		assert.Equal(t, 3, f.TipoComprobante)
		assert.Equal(t, "2024-01-15", f.Fecha)
		assert.Equal(t, "1020304050", f.Tercero)
		assert.Equal(t, 0, f.Consecutivo)
	}
}

func TestConstruir_RecibidosConReteFuente(t *testing.T) {
	docs := []*entity.Documento{documento("FR1", "2024-02-01", "1000", "190", "1190")}
	lineas := paquete(
		[3]string{"613505", "compra", "debito"},
		[3]string{"240802", "iva", "debito"},
		[3]string{"236540", "retefuente", "credito"},
		[3]string{"220505", "total", "credito"},
	)
	motor := contabilidad.NewMotorRecibidos(contabilidad.Tarifas{ReteFuente: dec("0.025")})

	filas, err := contabilizacion.Construir(docs, lineas, motor, contabilizacion.Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 4)

	assert.Equal(t, "1000.00", filas[0].Debito.StringFixed(2))
	assert.Equal(t, "190.00", filas[1].Debito.StringFixed(2))
	assert.Equal(t, contabilidad.CodigoIVADescontable, filas[1].CodigoImpuesto)
	assert.Equal(t, "25.00", filas[2].Credito.StringFixed(2))
	assert.Equal(t, contabilidad.CodigoReteFuente, filas[2].CodigoImpuesto)
	assert.Equal(t, "1165.00", filas[3].Credito.StringFixed(2))

	balanceado(t, filas)
	for _, f := range filas {
		assert.Equal(t, 4, f.TipoComprobante)
		assert.Equal(t, "800197268", f.Tercero)
	}
}

func TestConstruir_EmitidosIngresoImpuestoPago(t *testing.T) {
	docs := []*entity.Documento{
		documento("FE1", "2024-01-15", "200", "19", "219"),
		documento("FE2", "2024-01-16", "50", "0", "50"),
	}
	lineas := paquete(
		[3]string{"413524", "ingreso", "credito"},
		[3]string{"240801", "impuestos", "credito"},
		[3]string{"130505", "pago", "debito"},
	)

	filas, err := contabilizacion.Construir(docs, lineas, contabilidad.NewMotorEmitidos(), contabilizacion.Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 5)

	assert.Equal(t, "200.00", filas[0].Credito.StringFixed(2))
	assert.Equal(t, "19.00", filas[1].Credito.StringFixed(2))
	assert.True(t, filas[1].Debito.IsZero())
	assert.Equal(t, "219.00", filas[2].Debito.StringFixed(2))
	assert.True(t, filas[2].Credito.IsZero())
	balanceado(t, filas)
}

func TestConstruir_RecibidosTodasLasRetenciones(t *testing.T) {
	docs := []*entity.Documento{documento("FR1", "2024-02-01", "1000", "190", "1190")}
	lineas := paquete(
		[3]string{"613505", "compra", "debito"},
		[3]string{"240802", "iva", "debito"},
		[3]string{"236540", "retefuente", "credito"},
		[3]string{"236701", "reteiva", "credito"},
		[3]string{"236801", "reteica", "credito"},
		[3]string{"220505", "total", "credito"},
	)
	motor := contabilidad.NewMotorRecibidos(contabilidad.Tarifas{
		ReteFuente: dec("0.025"), ReteIVA: dec("0.15"), ReteICA: dec("0.00966"),
	})

	filas, err := contabilizacion.Construir(docs, lineas, motor, contabilizacion.Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 6)

	assert.Equal(t, "25.00", filas[2].Credito.StringFixed(2))
	assert.Equal(t, "28.50", filas[3].Credito.StringFixed(2))
	assert.Equal(t, "9.66", filas[4].Credito.StringFixed(2))
	assert.Equal(t, "1126.84", filas[5].Credito.StringFixed(2))
	balanceado(t, filas)
}

func TestConstruir_RecibidosReteICAInferidaDelPayable(t *testing.T) {
	d := documento("FR1", "2024-02-01", "1000", "190", "1190")
	d.Declarados = entity.TotalesDeclarados{
		LineExtension: dec("1000"), TaxExclusive: dec("1000"), TaxInclusive: dec("1190"), Payable: dec("1180.34"),
	}
	lineas := paquete(
		[3]string{"613505", "compra", "debito"},
		[3]string{"240802", "iva", "debito"},
		[3]string{"236801", "reteica", "credito"},
		[3]string{"220505", "total", "credito"},
	)
	motor := contabilidad.NewMotorRecibidos(contabilidad.Tarifas{InferirICA: true})

	filas, err := contabilizacion.Construir([]*entity.Documento{d}, lineas, motor, contabilizacion.Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 4)

	assert.Equal(t, "236801", filas[2].Cuenta)
	assert.Equal(t, "9.66", filas[2].Credito.StringFixed(2))
	assert.Equal(t, contabilidad.CodigoReteICA, filas[2].CodigoImpuesto)
	assert.Equal(t, "1180.34", filas[3].Credito.StringFixed(2))
	balanceado(t, filas)
}

func TestConstruir_RolRepetidoGeneraUnaFila(t *testing.T) {
	docs := []*entity.Documento{documento("FR1", "2024-02-01", "100", "0", "100")}
	lineas := paquete(
		[3]string{"613505", "compra", "debito"},
		[3]string{"519595", "gasto", "debito"},
		[3]string{"220505", "total", "credito"},
	)
	filas, err := contabilizacion.Construir(docs, lineas, contabilidad.NewMotorRecibidos(contabilidad.Tarifas{}), contabilizacion.Opciones{})
	require.NoError(t, err)
	require.Len(t, filas, 2, "IVA en cero no genera fila y el segundo costo se omite")
	assert.Equal(t, "613505", filas[0].Cuenta)
	assert.Equal(t, "220505", filas[1].Cuenta)
}

func TestConstruir_EntradaVacia(t *testing.T) {
	lineas := paquete([3]string{"5105", "costo", "debito"})
	_, err := contabilizacion.Construir(nil, lineas, contabilidad.NewMotorEmitidos(), contabilizacion.Opciones{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	docs := []*entity.Documento{documento("A", "2024-01-01", "1", "0", "1")}
	_, err = contabilizacion.Construir(docs, nil, contabilidad.NewMotorEmitidos(), contabilizacion.Opciones{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestConstruir_ConsecutivoPorDocumento(t *testing.T) {
	docs := []*entity.Documento{
		documento("B", "2024-03-02", "10", "0", "10"),
		documento("A", "2024-03-01", "20", "0", "20"),
	}
	lineas := paquete(
		[3]string{"4135", "ingreso", "credito"},
		[3]string{"1305", "pago", "debito"},
	)
	filas, err := contabilizacion.Construir(docs, lineas, contabilidad.NewMotorEmitidos(), contabilizacion.Opciones{Consecutivo: true, TipoComprobante: 7})
	require.NoError(t, err)
	require.Len(t, filas, 4)

	assert.Equal(t, "A", filas[0].DocumentoID)
	assert.Equal(t, 1, filas[0].Consecutivo)
	assert.Equal(t, 1, filas[1].Consecutivo)
	assert.Equal(t, "B", filas[2].DocumentoID)
	assert.Equal(t, 2, filas[2].Consecutivo)
	assert.Equal(t, 2, filas[3].Consecutivo)
	for _, f := range filas {
		assert.Equal(t, 7, f.TipoComprobante)
		assert.NotEqual(t, f.Debito.IsZero(), f.Credito.IsZero(), "exactamente uno de débito/crédito")
	}
}

func TestConstruir_OverrideCodigoImpuesto(t *testing.T) {
	d := documento("FR1", "2024-02-01", "100", "19", "119")
	d.CodigoImpuesto = "08"
	otro := documento("FR2", "2024-02-02", "100", "19", "119")
	lineas := paquete([3]string{"240802", "iva", "debito"})

	filas, err := contabilizacion.Construir([]*entity.Documento{d, otro}, lineas,
		contabilidad.NewMotorRecibidos(contabilidad.Tarifas{}), contabilizacion.Opciones{CodigoImpuesto: "10"})
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "08", filas[0].CodigoImpuesto)
	assert.Equal(t, "10", filas[1].CodigoImpuesto)
}

func TestOrdenar_EstableYSinFechaAlFinal(t *testing.T) {
	docs := []*entity.Documento{
		documento("sin", "", "1", "0", "1"),
		documento("b1", "2024-05-02", "1", "0", "1"),
		documento("a", "01/05/2024", "1", "0", "1"),
		documento("b2", "2024/05/02", "1", "0", "1"),
	}

	asc := contabilizacion.Ordenar(docs, contabilizacion.OrdenAsc)
	assert.Equal(t, []string{"a", "b1", "b2", "sin"}, ids(asc))

	desc := contabilizacion.Ordenar(docs, contabilizacion.OrdenDesc)
	assert.Equal(t, []string{"b1", "b2", "a", "sin"}, ids(desc))

	assert.Equal(t, "sin", docs[0].ID, "no modifica el orden de la entrada")
	assert.Equal(t, "2024-05-01", asc[0].FechaYMD)
}

func TestParseOrden(t *testing.T) {
	o, err := contabilizacion.ParseOrden("")
	require.NoError(t, err)
	assert.Equal(t, contabilizacion.OrdenAsc, o)

	o, err = contabilizacion.ParseOrden(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, contabilizacion.OrdenDesc, o)

	_, err = contabilizacion.ParseOrden("fecha")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// balanceado exige débitos = créditos por documento. No aplica cuando el paquete
// omite un rol con monto (p. ej. sin línea de IVA) ni cuando el neto se recorta a cero.
func balanceado(t *testing.T, filas []entity.FilaContable) {
	t.Helper()
	debito := map[string]decimal.Decimal{}
	credito := map[string]decimal.Decimal{}
	for _, f := range filas {
		debito[f.DocumentoID] = debito[f.DocumentoID].Add(f.Debito)
		credito[f.DocumentoID] = credito[f.DocumentoID].Add(f.Credito)
	}
	for id, d := range debito {
		assert.True(t, d.Equal(credito[id]), "partida doble %s: débito %s, crédito %s", id, d, credito[id])
	}
}

func ids(docs []*entity.Documento) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}
