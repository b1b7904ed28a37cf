package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/workload-backend/internal/data/aggregates"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
)

// InjectedTxRunner counts transaction outcomes and injects failures. With an
// Inner runner the body runs in a real transaction, so an injected commit
// failure rolls back everything the body wrote.
type InjectedTxRunner struct {
	mu sync.Mutex

	Inner aggregates.TxRunner

	FailBegin  error
	FailCommit error

	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	failBegin := r.FailBegin
	failCommit := r.FailCommit
	inner := r.Inner
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}
	body := func(dbc dbctx.Context) error {
		if fn != nil {
			if err := fn(dbc); err != nil {
				r.count(&r.RollbackCalls)
				return err
			}
		}
		if failCommit != nil {
			r.count(&r.RollbackCalls)
			return failCommit
		}
		r.count(&r.CommitCalls)
		return nil
	}
	if inner == nil {
		return body(dbctx.Context{Ctx: ctx})
	}
	return inner.InTx(ctx, body)
}

func (r *InjectedTxRunner) count(n *int) {
	r.mu.Lock()
	*n++
	r.mu.Unlock()
}
