package contabilizacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

func defaults() contabilizacion.Defaults {
	return contabilizacion.Defaults{
		TipoComprobanteEmitidos:  3,
		TipoComprobanteRecibidos: 4,
		Retefuente:               dec("0.025"),
		InferirICA:               true,
		CodigoImpuesto:           "04",
	}
}

func TestResolverOpciones_Emitidos(t *testing.T) {
	op, tar, err := contabilizacion.ResolverOpciones(contabilidad.PerfilEmitidos,
		dto.OpcionesRequest{Orden: "desc", NombreArchivo: "enero", RetefuenteTarifa: 0.1}, defaults())
	require.NoError(t, err)
	assert.Equal(t, 3, op.TipoComprobante)
	assert.Equal(t, contabilizacion.OrdenDesc, op.Orden)
	assert.Equal(t, "enero.xlsx", op.NombreArchivo)
	assert.True(t, tar.ReteFuente.IsZero(), "emitidos no retiene")
	assert.Empty(t, op.CodigoImpuesto)
}

func TestResolverOpciones_RecibidosDefaultsYEmpresa(t *testing.T) {
	d := defaults().ConEmpresa(&entity.Empresa{ReteivaPorc: dec("0.15")})
	op, tar, err := contabilizacion.ResolverOpciones(contabilidad.PerfilRecibidos,
		dto.OpcionesRequest{ReteicaTarifa: 0.00966, SinInferirICA: true}, d)
	require.NoError(t, err)
	assert.Equal(t, 4, op.TipoComprobante)
	assert.Equal(t, "04", op.CodigoImpuesto)
	assert.True(t, tar.ReteFuente.Equal(dec("0.025")))
	assert.True(t, tar.ReteIVA.Equal(dec("0.15")))
	assert.True(t, tar.ReteICA.Equal(dec("0.00966")))
	assert.False(t, tar.InferirICA)
}

func TestResolverOpciones_Invalidas(t *testing.T) {
	_, _, err := contabilizacion.ResolverOpciones(contabilidad.PerfilRecibidos, dto.OpcionesRequest{Orden: "x"}, defaults())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = contabilizacion.ResolverOpciones(contabilidad.PerfilRecibidos, dto.OpcionesRequest{RetefuenteTarifa: 2.5}, defaults())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = contabilizacion.ResolverOpciones(contabilidad.PerfilEmitidos, dto.OpcionesRequest{TipoComprobante: -1}, defaults())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "tipo_comprobante debe ser mayor o igual a 0")

	_, _, err = contabilizacion.ResolverOpciones(contabilidad.PerfilEmitidos, dto.OpcionesRequest{NombreArchivo: "../lote"}, defaults())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "nombre_archivo")
}

func TestResolverOpciones_TarifaPorDefectoFueraDeRango(t *testing.T) {
	d := defaults()
	d.Reteiva = dec("1.5")
	_, _, err := contabilizacion.ResolverOpciones(contabilidad.PerfilRecibidos, dto.OpcionesRequest{}, d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
