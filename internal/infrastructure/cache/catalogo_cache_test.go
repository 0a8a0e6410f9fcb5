package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/cache"
)

type fakeRepo struct {
	llamadasLineas  int
	llamadasEmpresa int
}

func (f *fakeRepo) ListEmpresas(context.Context) ([]*entity.Empresa, error) {
	return []*entity.Empresa{{ID: "e1"}}, nil
}

func (f *fakeRepo) GetEmpresa(_ context.Context, id string) (*entity.Empresa, error) {
	f.llamadasEmpresa++
	if id != "e1" {
		return nil, domain.ErrNotFound
	}
	return &entity.Empresa{ID: id, Nombre: "ACME"}, nil
}

func (f *fakeRepo) ListPaquetes(context.Context, string) ([]*entity.Paquete, error) { return nil, nil }

func (f *fakeRepo) GetLineas(_ context.Context, id string) ([]entity.LineaCatalogo, error) {
	f.llamadasLineas++
	return []entity.LineaCatalogo{{Cuenta: "5105", Tipo: "costo"}}, nil
}

func TestCatalogoCache_GetLineas(t *testing.T) {
	repo := &fakeRepo{}
	c := cache.NewCatalogoCache(repo, time.Minute, time.Minute)

	a, err := c.GetLineas(context.Background(), "p1")
	require.NoError(t, err)
	a[0].Cuenta = "alterada"

	b, err := c.GetLineas(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "5105", b[0].Cuenta)
	assert.Equal(t, 1, repo.llamadasLineas)

	c.Invalidar()
	_, err = c.GetLineas(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.llamadasLineas)
}

func TestCatalogoCache_ErroresNoSeCachean(t *testing.T) {
	repo := &fakeRepo{}
	c := cache.NewCatalogoCache(repo, time.Minute, time.Minute)

	_, err := c.GetEmpresa(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = c.GetEmpresa(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, repo.llamadasEmpresa)

	e, err := c.GetEmpresa(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "ACME", e.Nombre)
	_, _ = c.GetEmpresa(context.Background(), "e1")
	assert.Equal(t, 3, repo.llamadasEmpresa)
}
