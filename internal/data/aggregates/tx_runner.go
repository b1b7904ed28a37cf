package aggregates

import (
	"context"
	"errors"

	domainagg "github.com/yungbote/workload-backend/internal/domain/aggregates"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"gorm.io/gorm"
)

// ErrRollback makes InTx roll back without reporting a failure.
var ErrRollback = errors.New("rollback requested")

// TxRunner provides the single transaction boundary of an ingestion run.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domainagg.NewError(domainagg.CodeInternal, "aggregate.tx", "transaction runner has nil db", nil)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
	if errors.Is(err, ErrRollback) {
		return nil
	}
	return err
}
