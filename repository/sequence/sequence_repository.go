package sequence

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// SequenceRepository issues strictly increasing integers per named counter.
// Next is a single atomic increment-and-read statement; concurrent callers on
// the same name never observe the same value and no value is skipped except
// via Reset.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
	Reset(ctx context.Context, name string) error
}

func NewSequenceRepository(conn *sqlx.DB) SequenceRepository {
	return &SQL{conn: conn}
}

// LAST_INSERT_ID(expr) makes the incremented value readable from the same
// statement, keeping the read-modify-write atomic on the server.
const nextQuery = `INSERT INTO sequence_counter (name, value) VALUES (?, LAST_INSERT_ID(1))
	ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + 1)`

func (r *SQL) Next(ctx context.Context, name string) (int64, error) {
	res, err := r.conn.ExecContext(ctx, nextQuery, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Reset sets the counter to 0 so the next allocation starts at 1. Only used
// when the backing entity table is empty, to avoid drift after data wipes.
func (r *SQL) Reset(ctx context.Context, name string) error {
	_, err := r.conn.ExecContext(ctx,
		"INSERT INTO sequence_counter (name, value) VALUES (?, 0) ON DUPLICATE KEY UPDATE value = 0", name)
	return err
}
