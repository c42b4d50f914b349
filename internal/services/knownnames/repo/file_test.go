package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	perr "filmnames/internal/platform/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "known.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFile_ListNames(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
		code perr.ErrorCode
		fail bool
	}{
		{"mapping", "names:\n  - Pedro\n  - María\n", []string{"Pedro", "María"}, 0, false},
		{"sequence", "- luisa\n- ricardo\n", []string{"luisa", "ricardo"}, 0, false},
		{"empty doc", "", nil, 0, false},
		{"scalar", "pedro\n", nil, perr.ErrorCodeInvalidArgument, true},
		{"bad yaml", "names: [pedro\n", nil, perr.ErrorCodeInvalidArgument, true},
		{"wrong type", "names: {a: b}\n", nil, perr.ErrorCodeInvalidArgument, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := NewFile(writeFile(t, c.body)).ListNames(context.Background())
			if c.fail {
				if !perr.IsCode(err, c.code) {
					t.Fatalf("want code %v, got %v", c.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %q, want %q", got, c.want)
			}
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Fatalf("got %q, want %q", got, c.want)
				}
			}
		})
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.yaml")).ListNames(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("missing file should be unavailable, got %v", err)
	}
}

func TestFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFile("ignored").ListNames(ctx); err == nil {
		t.Fatal("canceled ctx should fail")
	}
}
