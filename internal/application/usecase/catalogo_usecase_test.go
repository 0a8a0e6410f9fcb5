package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

type fakeCatalogoRepo struct{}

func (fakeCatalogoRepo) ListEmpresas(context.Context) ([]*entity.Empresa, error) {
	return []*entity.Empresa{{ID: "e1", Nombre: "ACME", RetefuenteTarifa: decimal.RequireFromString("0.025")}}, nil
}

func (fakeCatalogoRepo) GetEmpresa(_ context.Context, id string) (*entity.Empresa, error) {
	if id != "e1" {
		return nil, domain.ErrNotFound
	}
	return &entity.Empresa{ID: "e1"}, nil
}

func (fakeCatalogoRepo) ListPaquetes(_ context.Context, empresaID string) ([]*entity.Paquete, error) {
	return []*entity.Paquete{{ID: "p1", EmpresaID: empresaID, Nombre: "Compras"}}, nil
}

func (fakeCatalogoRepo) GetLineas(_ context.Context, id string) ([]entity.LineaCatalogo, error) {
	if id != "p1" {
		return nil, domain.ErrNotFound
	}
	return []entity.LineaCatalogo{{Cuenta: "613505", Tipo: "compra", Naturaleza: "debito"}}, nil
}

func TestCatalogoUseCase_SinBaseDatos(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(nil)
	assert.False(t, uc.ConBaseDatos())

	_, err := uc.Lineas(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	e, err := uc.Empresa(context.Background(), "e1")
	require.NoError(t, err)
	assert.Nil(t, e)

	_, err = uc.ListEmpresas(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogoUseCase_ConRepo(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(fakeCatalogoRepo{})

	empresas, err := uc.ListEmpresas(context.Background())
	require.NoError(t, err)
	require.Len(t, empresas, 1)
	assert.Equal(t, "0.025", empresas[0].RetefuenteTarifa.String())

	paquetes, err := uc.ListPaquetes(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "p1", paquetes[0].ID)

	_, err = uc.ListPaquetes(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cuentas, err := uc.Cuentas(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "613505", cuentas[0].Cuenta)
}

func TestCatalogoUseCase_Desde(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(nil)
	lineas, err := uc.Desde([]dto.LineaCatalogoRequest{{Cuenta: "5105", Tipo: "Costo", Naturaleza: "Débito"}})
	require.NoError(t, err)
	require.Len(t, lineas, 1)
	assert.Equal(t, "debito", lineas[0].Naturaleza)

	_, err = uc.Desde([]dto.LineaCatalogoRequest{{Cuenta: "5105", Tipo: "nada", Naturaleza: "debito"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogoUseCase_ValidarArchivo(t *testing.T) {
	uc := usecase.NewCatalogoUseCase(nil)
	rep, lineas, err := uc.ValidarArchivo("p.csv", []byte("codigo,tipo,naturaleza\n5105,costo,debito\n,costo,debito\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Total)
	assert.Equal(t, 1, rep.Validas)
	require.Len(t, rep.Errores, 1)
	assert.Equal(t, 3, rep.Errores[0].Fila)
	assert.Len(t, lineas, 1)
}
