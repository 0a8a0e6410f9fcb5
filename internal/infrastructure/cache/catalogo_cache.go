// Package cache decora el repositorio de catálogo con una caché en memoria (go-cache).
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoCache)(nil)

// CatalogoCache cachea empresas y líneas de paquete; los listados de paquetes van directo a la fuente.
// Los errores no se cachean.
type CatalogoCache struct {
	next repository.CatalogoRepository
	c    *gocache.Cache
}

// NewCatalogoCache envuelve next con expiración ttl y limpieza cada cleanup.
func NewCatalogoCache(next repository.CatalogoRepository, ttl, cleanup time.Duration) *CatalogoCache {
	return &CatalogoCache{next: next, c: gocache.New(ttl, cleanup)}
}

func (r *CatalogoCache) ListEmpresas(ctx context.Context) ([]*entity.Empresa, error) {
	const key = "empresas"
	if v, ok := r.c.Get(key); ok {
		return v.([]*entity.Empresa), nil
	}
	out, err := r.next.ListEmpresas(ctx)
	if err != nil {
		return nil, err
	}
	r.c.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}

func (r *CatalogoCache) GetEmpresa(ctx context.Context, id string) (*entity.Empresa, error) {
	key := "empresa:" + id
	if v, ok := r.c.Get(key); ok {
		return v.(*entity.Empresa), nil
	}
	e, err := r.next.GetEmpresa(ctx, id)
	if err != nil {
		return nil, err
	}
	r.c.Set(key, e, gocache.DefaultExpiration)
	return e, nil
}

func (r *CatalogoCache) ListPaquetes(ctx context.Context, empresaID string) ([]*entity.Paquete, error) {
	return r.next.ListPaquetes(ctx, empresaID)
}

// GetLineas devuelve una copia para que el llamador no altere la entrada cacheada.
func (r *CatalogoCache) GetLineas(ctx context.Context, paqueteID string) ([]entity.LineaCatalogo, error) {
	key := "lineas:" + paqueteID
	if v, ok := r.c.Get(key); ok {
		return append([]entity.LineaCatalogo(nil), v.([]entity.LineaCatalogo)...), nil
	}
	out, err := r.next.GetLineas(ctx, paqueteID)
	if err != nil {
		return nil, err
	}
	r.c.Set(key, out, gocache.DefaultExpiration)
	return append([]entity.LineaCatalogo(nil), out...), nil
}

// Invalidar vacía la caché.
func (r *CatalogoCache) Invalidar() {
	r.c.Flush()
}
