// Package docfile loads TOML document descriptions and turns them into
// content trees. A document file is the CLI's input format: a [document]
// header plus an ordered list of [[block]] tables.
package docfile

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"folio/internal/geom"
	"folio/internal/library"
	"folio/internal/model"
)

var (
	// ErrUnknownBlockKind indicates a [[block]] with an unrecognized kind.
	ErrUnknownBlockKind = errors.New("unknown block kind")
	// ErrMissingText indicates a block kind that requires text but has none.
	ErrMissingText = errors.New("missing text")
	// ErrMissingTarget indicates a ref block without a target.
	ErrMissingTarget = errors.New("missing target")
	// ErrBadAmount indicates a vspace block with a non-positive amount.
	ErrBadAmount = errors.New("amount must be positive")
)

// Header is the [document] section.
type Header struct {
	Title   string `toml:"title"`
	Outline bool   `toml:"outline"`
}

// Block is one [[block]] table. Kind selects which of the other fields
// apply.
type Block struct {
	Kind   string  `toml:"kind"`
	Level  int     `toml:"level"`
	Text   string  `toml:"text"`
	Label  string  `toml:"label"`
	Target string  `toml:"target"`
	Amount float64 `toml:"amount"`
}

// File is a parsed document file.
type File struct {
	Document Header  `toml:"document"`
	Blocks   []Block `toml:"block"`
}

// Load parses a document file and builds its content tree.
func Load(path string) (*model.Content, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	c, err := f.Content()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds the content tree from in-memory TOML data.
func Parse(data string) (*model.Content, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return f.Content()
}

// Content assembles the file's content tree.
func (f *File) Content() (*model.Content, error) {
	var seq []*model.Content
	if f.Document.Title != "" {
		seq = append(seq, library.Heading(1, library.Text(f.Document.Title)))
	}
	if f.Document.Outline {
		seq = append(seq, library.Outline())
	}
	for i, b := range f.Blocks {
		c, err := b.content()
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Kind, err)
		}
		seq = append(seq, c)
	}
	return model.Sequence(seq...), nil
}

func (b Block) content() (*model.Content, error) {
	switch b.Kind {
	case "heading":
		if b.Text == "" {
			return nil, ErrMissingText
		}
		level := b.Level
		if level < 1 {
			level = 1
		}
		h := library.Heading(level, library.Text(b.Text))
		if b.Label != "" {
			h = library.Labeled(h, b.Label)
		}
		return h, nil
	case "par":
		if b.Text == "" {
			return nil, ErrMissingText
		}
		return library.Par(b.Text), nil
	case "outline":
		return library.Outline(), nil
	case "pagebreak":
		return library.Pagebreak(), nil
	case "ref":
		if b.Target == "" {
			return nil, ErrMissingTarget
		}
		return library.Ref(b.Target), nil
	case "vspace":
		if b.Amount <= 0 {
			return nil, ErrBadAmount
		}
		return library.V(geom.Pt(b.Amount)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockKind, b.Kind)
	}
}
