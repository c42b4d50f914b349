package names

import (
	"reflect"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{" PEDRO ", "pedro"},
		{"María", "maría"},
		{"Mari\u0301a", "maría"}, // decomposed accent composes to the same key
		{"ÑANDÚ", "ñandú"},
	}
	for _, tc := range tests {
		if got := Key(tc.in); got != tc.want {
			t.Fatalf("Key(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKnownSet(t *testing.T) {
	k := NewKnownSet("Pedro", "pedro", "  ", "María", "María")
	if k.Len() != 2 {
		t.Fatalf("Len = %d, want 2", k.Len())
	}
	if !k.Has("PEDRO") || !k.Has("MARÍA") {
		t.Fatalf("expected case-insensitive hits")
	}
	if k.Has("Juan") || k.Has("") {
		t.Fatalf("unexpected hit")
	}
	if got, want := k.Names(), []string{"maría", "pedro"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %q, want %q", got, want)
	}
}

func TestKnownSet_ZeroValue(t *testing.T) {
	var k KnownSet
	if k.Has("pedro") || k.Len() != 0 || len(k.Names()) != 0 {
		t.Fatalf("zero KnownSet must be empty")
	}
}

func TestKnownSet_With(t *testing.T) {
	base := NewKnownSet("pedro")
	ext := base.With("Ana", " ", "PEDRO")
	if ext.Len() != 2 || !ext.Has("ana") || !ext.Has("pedro") {
		t.Fatalf("With result = %q", ext.Names())
	}
	if base.Len() != 1 || base.Has("ana") {
		t.Fatalf("With mutated the receiver: %q", base.Names())
	}

	var zero KnownSet
	if got := zero.With("Luisa"); !got.Has("luisa") {
		t.Fatalf("With on zero set lost names")
	}
}
