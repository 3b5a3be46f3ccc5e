package sql

import (
	"context"
	"database/sql/driver"
)

var _ driver.Tx = (*profiledTx)(nil)

// profiledTx decorates a transaction. Commit and Rollback are recorded
// against the context the transaction was started with, so they land in
// the same profile as the statements run inside it.
type profiledTx struct {
	ctx context.Context
	tx  driver.Tx
	cfg *config
}

func newProfiledTx(ctx context.Context, tx driver.Tx, cfg *config) *profiledTx {
	if ctx == nil {
		ctx = context.Background()
	}
	return &profiledTx{
		ctx: ctx,
		tx:  tx,
		cfg: cfg,
	}
}

// Commit implements driver.Tx.
func (t *profiledTx) Commit() error {
	_, obs := t.cfg.startCall(context.WithoutCancel(t.ctx), "COMMIT")
	err := t.tx.Commit()
	obs.End(err)
	return err
}

// Rollback implements driver.Tx.
func (t *profiledTx) Rollback() error {
	_, obs := t.cfg.startCall(context.WithoutCancel(t.ctx), "ROLLBACK")
	err := t.tx.Rollback()
	obs.End(err)
	return err
}
