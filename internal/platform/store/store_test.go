package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeTx satisfies TxRunner but not Pinger
type fakeTx struct{ closed int }

func (f *fakeTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error { return fn(f) }
func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return fakeTag(0), nil
}
func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) { return nil, nil }
func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) Row       { return nil }
func (f *fakeTx) Close() error                                                   { f.closed++; return nil }

// fakeTxPing also answers Ping
type fakeTxPing struct {
	fakeTx
	err error
}

func (f *fakeTxPing) Ping(context.Context) error { return f.err }

type fakeRedis struct {
	pingErr  error
	closeErr error
	closed   int
}

func (f *fakeRedis) Members(context.Context, string) ([]string, error) { return nil, nil }
func (f *fakeRedis) ReplaceSet(context.Context, string, []string, time.Duration) error {
	return nil
}
func (f *fakeRedis) Ping(context.Context) error { return f.pingErr }
func (f *fakeRedis) Close() error               { f.closed++; return f.closeErr }

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

func TestOpen_NothingEnabled(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s.PG != nil || s.RDS != nil {
		t.Fatalf("unexpected seams PG=%T RDS=%T", s.PG, s.RDS)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestOpen_PGEnabled_BadURL_BubblesError(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil {
		t.Fatalf("expected error, got store %+v", s)
	}
}

func TestOpen_OptionError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("want option error, got %v", err)
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatalf("nil store should return error")
	}

	if err := (&Store{PG: &fakeTx{}}).Guard(context.Background()); err != nil {
		t.Fatalf("non-pinger PG should be ignored, got %v", err)
	}

	s := &Store{
		PG:  &fakeTxPing{err: errors.New("pg down")},
		RDS: &fakeRedis{pingErr: errors.New("redis down")},
	}
	err := s.Guard(context.Background())
	if err == nil {
		t.Fatalf("expected joined error")
	}
	for _, want := range []string{"pg: pg down", "redis: redis down"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestClose_ClosesBothAndJoins(t *testing.T) {
	t.Parallel()

	pg := &fakeTx{}
	r := &fakeRedis{closeErr: errors.New("redis close")}
	s := &Store{PG: pg, RDS: r}

	err := s.Close(context.Background())
	if err == nil || !strings.Contains(err.Error(), "redis close") {
		t.Fatalf("expected redis close error, got %v", err)
	}
	if pg.closed != 1 || r.closed != 1 {
		t.Fatalf("close counts pg=%d redis=%d", pg.closed, r.closed)
	}
}
