package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"nutriflow/internal/infra"
)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type execCall struct {
	query string
	args  []any
}

// fakeSQL records every statement and answers QueryRow from rows keyed by
// query text.
type fakeSQL struct {
	calls    []execCall
	rows     map[string]func(dest ...any) error
	affected int64
	execErr  error
	txCalls  int
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", f.affected)), nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, execCall{query: query, args: args})
	return simpleRow{scan: f.rows[query]}
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	return nil, errors.New("query not supported in fakeSQL")
}

func (f *fakeSQL) InTx(_ context.Context, fn func(infra.SQLExecutor) error) error {
	f.txCalls++
	return fn(f)
}

func (f *fakeSQL) queries() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.query)
	}
	return out
}

var _ infra.TxExecutor = (*fakeSQL)(nil)
