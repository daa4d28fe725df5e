package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRepository scopes a database transaction so the order assembly can write
// its header and items atomically without owning the *sqlx.DB.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepoImpl struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepoImpl{db: db}
}

func (r *txRepoImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *txRepoImpl) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepoImpl) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
