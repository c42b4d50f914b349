package validate

import (
	"testing"

	perr "filmnames/internal/platform/errors"
)

type opts struct {
	Workers   int    `flag:"workers" validate:"min=1,max=64"`
	PageSize  int    `flag:"page-size" validate:"min=1"`
	KnownFile string `flag:"known-names-file" validate:"omitempty,yamlfile"`
	Dir       string `yaml:"dir" validate:"required"`
}

func TestStruct(t *testing.T) {
	cases := []struct {
		name    string
		in      opts
		field   string
		message string
	}{
		{"ok", opts{Workers: 4, PageSize: 500, Dir: "."}, "", ""},
		{"ok with file", opts{Workers: 4, PageSize: 500, KnownFile: "names.YML", Dir: "."}, "", ""},
		{"workers low", opts{Workers: 0, PageSize: 500, Dir: "."}, "workers", "workers must be at least 1"},
		{"workers high", opts{Workers: 65, PageSize: 500, Dir: "."}, "workers", "workers must be at most 64"},
		{"page size", opts{Workers: 1, PageSize: 0, Dir: "."}, "page-size", "page-size must be at least 1"},
		{"file ext", opts{Workers: 1, PageSize: 1, KnownFile: "names.json", Dir: "."}, "known-names-file", "known-names-file must be a .yaml or .yml file"},
		{"yaml tag name", opts{Workers: 1, PageSize: 1}, "dir", "dir is a required field"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if c.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			e, _ := perr.As(err)
			if e.Field() != c.field {
				t.Fatalf("field = %q, want %q", e.Field(), c.field)
			}
			if err.Error() != c.message {
				t.Fatalf("message = %q, want %q", err.Error(), c.message)
			}
		})
	}
}

func TestStructInvalidTarget(t *testing.T) {
	err := Struct(nil)
	if err == nil || perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("nil target should be an internal error, got %v", err)
	}
}

func TestFieldAndMessageNil(t *testing.T) {
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil error should yield empty pair")
	}
}
