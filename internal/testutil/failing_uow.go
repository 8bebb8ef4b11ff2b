package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/db"
)

// TableFaultUoW runs transactions against DB and fails the first write that
// touches Table. Saves that span several tables can be cut off between two
// of them; reads pass through.
type TableFaultUoW struct {
	DB    *sql.DB
	Table string
	Err   error

	// Writes counts the statements executed before the fault, across calls.
	Writes int
}

func (u *TableFaultUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &tableFault{DBTX: tx, uow: u})
	})
}

type tableFault struct {
	db.DBTX
	uow *TableFaultUoW
}

func (f *tableFault) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, " "+f.uow.Table) {
		return nil, f.uow.Err
	}
	f.uow.Writes++
	return f.DBTX.ExecContext(ctx, query, args...)
}
