package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// CatalogRepository answers existence checks against the menu catalog.
// Soft-deleted rows count as nonexistent.
type CatalogRepository interface {
	ProductExists(ctx context.Context, id string) (bool, error)
	ComboExists(ctx context.Context, id string) (bool, error)
	UserExists(ctx context.Context, id string) (bool, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

func (r *SQL) ProductExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM product WHERE id = ? AND deleted_at IS NULL", id)
}

func (r *SQL) ComboExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM combo WHERE id = ? AND deleted_at IS NULL", id)
}

func (r *SQL) UserExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "SELECT 1 FROM user WHERE id = ? AND deleted_at IS NULL", id)
}

func (r *SQL) exists(ctx context.Context, query, id string) (bool, error) {
	var one int
	if err := r.conn.QueryRowxContext(ctx, query, id).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
