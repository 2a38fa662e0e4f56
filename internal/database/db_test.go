package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWhenUnset(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.PanicsWithValue(t, "unexpected Exec", func() { _, _ = db.Exec(ctx, "") })
	require.PanicsWithValue(t, "unexpected Query", func() { _, _ = db.Query(ctx, "") })
	require.PanicsWithValue(t, "unexpected QueryRow", func() { db.QueryRow(ctx, "") })
	require.PanicsWithValue(t, "unexpected Ping", func() { _ = db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	calls := map[string]int{}
	db := &FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			calls["exec"]++
			return pgconn.CommandTag{}, errors.New("e")
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			calls["query"]++
			return emptyRows{}, nil
		},
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			calls["row"]++
			return emptyRows{}
		},
		PingFn:  func(context.Context) error { calls["ping"]++; return nil },
		CloseFn: func() { calls["close"]++ },
	}
	ctx := context.Background()

	_, err := db.Exec(ctx, "sql")
	require.Error(t, err)
	_, err = db.Query(ctx, "sql")
	require.NoError(t, err)
	_ = db.QueryRow(ctx, "sql")
	require.NoError(t, db.Ping(ctx))
	db.Close()

	require.Equal(t, map[string]int{"exec": 1, "query": 1, "row": 1, "ping": 1, "close": 1}, calls)
}
