package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " debug ")
	t.Setenv("LOG_BLANK", "  ")

	lg := New().Prefix("LOG_")
	if got := lg.Get("LEVEL", "info"); got != "debug" {
		t.Fatalf("Get = %q", got)
	}
	if got := lg.Get("BLANK", "info"); got != "info" {
		t.Fatalf("blank should use default, got %q", got)
	}
	if _, ok := lg.Lookup("MISSING"); ok {
		t.Fatalf("missing key reported as set")
	}
	if got := New().Get("LOG_LEVEL", ""); got != "debug" {
		t.Fatalf("root Get = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("LOG_")
	tests := map[string]bool{"1": true, "TRUE": true, "yes": true, "On": true, "0": false, "no": false, "junk": false}
	for v, want := range tests {
		t.Setenv("LOG_NO_COLOR", v)
		if got := c.GetBool("NO_COLOR", !want); got != want {
			t.Fatalf("GetBool(%q) = %v, want %v", v, got, want)
		}
	}
	if !c.GetBool("UNSET", true) {
		t.Fatalf("unset should return default")
	}
}
