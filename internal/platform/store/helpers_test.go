package store

import (
	"context"
	"errors"
	"testing"

	perr "filmnames/internal/platform/errors"
)

type execQ struct {
	fakeTx
	affected int64
	err      error
	rows     Rows
}

func (q *execQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(q.affected), q.err
}

func (q *execQ) Query(context.Context, string, ...any) (Rows, error) { return q.rows, q.err }

type sliceRows struct {
	vals []string
	idx  int
	err  error
	shut bool
}

func (r *sliceRows) Next() bool { r.idx++; return r.idx <= len(r.vals) }
func (r *sliceRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.idx-1]
	return nil
}
func (r *sliceRows) Err() error        { return r.err }
func (r *sliceRows) Close()            { r.shut = true }
func (r *sliceRows) Columns() []string { return []string{"name"} }

func TestExecOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if err := ExecOne(ctx, &execQ{affected: 1}, "UPDATE people"); err != nil {
		t.Fatalf("one row: unexpected %v", err)
	}
	if err := ExecOne(ctx, &execQ{affected: 0}, "UPDATE people"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("zero rows: want ErrNotFound, got %v", err)
	}
	if err := ExecOne(ctx, &execQ{affected: 3}, "UPDATE people"); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("many rows: want conflict, got %v", err)
	}
	boom := errors.New("boom")
	if err := ExecOne(ctx, &execQ{err: boom}, "UPDATE people"); !errors.Is(err, boom) {
		t.Fatalf("exec error: want boom, got %v", err)
	}
}

func TestMany(t *testing.T) {
	t.Parallel()

	rs := &sliceRows{vals: []string{"ana", "pedro"}}
	got, err := Many(context.Background(), &execQ{rows: rs}, func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}, "SELECT name")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if len(got) != 2 || got[0] != "ana" || got[1] != "pedro" {
		t.Fatalf("Many = %q", got)
	}
	if !rs.shut {
		t.Fatalf("rows not closed")
	}
}
