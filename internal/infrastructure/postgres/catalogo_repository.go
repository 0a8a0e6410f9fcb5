package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/internal/domain/repository"
)

// Asegura que CatalogoRepo implementa repository.CatalogoRepository.
var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo lectura de empresas, paquetes y cuentas PUC sobre PostgreSQL.
type CatalogoRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogoRepository construye el adaptador.
func NewCatalogoRepository(pool *pgxpool.Pool) *CatalogoRepo {
	return &CatalogoRepo{pool: pool}
}

const selectEmpresa = `
		SELECT id, nombre, nit, codigo, estado,
		       COALESCE(retefuente_tarifa, 0), COALESCE(reteiva_porc, 0), COALESCE(reteica_tarifa, 0),
		       created_at
		FROM empresas`

// ListEmpresas lista las empresas por nombre.
func (r *CatalogoRepo) ListEmpresas(ctx context.Context) ([]*entity.Empresa, error) {
	rows, err := r.pool.Query(ctx, selectEmpresa+` ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Empresa
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetEmpresa obtiene una empresa por ID. Las tarifas NUMERIC se leen como decimal.Decimal.
func (r *CatalogoRepo) GetEmpresa(ctx context.Context, id string) (*entity.Empresa, error) {
	e, err := scanEmpresa(r.pool.QueryRow(ctx, selectEmpresa+` WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("empresa %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}

// ListPaquetes paquetes PUC de una empresa.
func (r *CatalogoRepo) ListPaquetes(ctx context.Context, empresaID string) ([]*entity.Paquete, error) {
	query := `
		SELECT id, empresa_id, nombre, COALESCE(descripcion, ''), created_at
		FROM paquetes WHERE empresa_id = $1
		ORDER BY nombre`
	rows, err := r.pool.Query(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list paquetes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Paquete
	for rows.Next() {
		var p entity.Paquete
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Nombre, &p.Descripcion, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan paquete: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// GetLineas cuentas del paquete en el orden declarado. Un paquete sin cuentas o inexistente
// retorna domain.ErrNotFound.
func (r *CatalogoRepo) GetLineas(ctx context.Context, paqueteID string) ([]entity.LineaCatalogo, error) {
	query := `
		SELECT cuenta, COALESCE(nombre, ''), tipo, naturaleza, orden
		FROM paquete_cuentas WHERE paquete_id = $1
		ORDER BY orden, cuenta`
	rows, err := r.pool.Query(ctx, query, paqueteID)
	if err != nil {
		return nil, fmt.Errorf("get lineas: %w", err)
	}
	defer rows.Close()

	var out []entity.LineaCatalogo
	for rows.Next() {
		var l entity.LineaCatalogo
		if err := rows.Scan(&l.Cuenta, &l.Nombre, &l.Tipo, &l.Naturaleza, &l.Orden); err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("paquete %s: %w", paqueteID, domain.ErrNotFound)
	}
	return out, nil
}

func scanEmpresa(row pgx.Row) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(&e.ID, &e.Nombre, &e.NIT, &e.Codigo, &e.Estado,
		&e.RetefuenteTarifa, &e.ReteivaPorc, &e.ReteicaTarifa, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
