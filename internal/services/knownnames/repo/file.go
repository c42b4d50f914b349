package repo

import (
	"context"
	"os"

	perr "filmnames/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// File reads given names from a YAML document, either
//
//	names: [pedro, maría]
//
// or a bare sequence
type File struct {
	Path string
}

// NewFile returns a file source for path
func NewFile(path string) *File { return &File{Path: path} }

type fileDoc struct {
	Names []string `yaml:"names"`
}

// ListNames parses the file on every call
func (f *File) ListNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read known names file %s", f.Path)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse known names file %s", f.Path)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var xs []string
		if err := root.Decode(&xs); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode names in %s", f.Path)
		}
		return xs, nil
	case yaml.MappingNode:
		var doc fileDoc
		if err := root.Decode(&doc); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode names in %s", f.Path)
		}
		return doc.Names, nil
	default:
		return nil, perr.InvalidArgf("known names file %s: expected a list or a names: key", f.Path)
	}
}
