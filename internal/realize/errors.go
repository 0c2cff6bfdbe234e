package realize

import (
	"fmt"

	"folio/internal/model"
)

// CapabilityError reports a capability invoked on a node kind that does
// not declare it. This is an implementation or authoring bug: it aborts
// the pass immediately instead of becoming a diagnostic.
type CapabilityError struct {
	Kind model.NodeKind
	Cap  model.Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("realize: kind %q does not declare capability %s", e.Kind, e.Cap)
}

// BadFieldError reports a field access that found a missing field or a
// value of the wrong variant. Like CapabilityError it aborts the pass.
type BadFieldError struct {
	Kind  model.NodeKind
	Field string
	Want  model.ValueKind
}

func (e *BadFieldError) Error() string {
	return fmt.Sprintf("realize: node %q field %q missing or not %s", e.Kind, e.Field, e.Want)
}

// FieldStr extracts a required string field.
func FieldStr(c *model.Content, name string) (string, error) {
	v, ok := c.Field(name)
	if !ok {
		return "", &BadFieldError{Kind: c.Kind(), Field: name, Want: model.ValStr}
	}
	s, ok := v.AsStr()
	if !ok {
		return "", &BadFieldError{Kind: c.Kind(), Field: name, Want: model.ValStr}
	}
	return s, nil
}

// FieldInt extracts a required integer field.
func FieldInt(c *model.Content, name string) (int64, error) {
	v, ok := c.Field(name)
	if !ok {
		return 0, &BadFieldError{Kind: c.Kind(), Field: name, Want: model.ValInt}
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, &BadFieldError{Kind: c.Kind(), Field: name, Want: model.ValInt}
	}
	return i, nil
}

// FieldContent extracts a required content field.
func FieldContent(c *model.Content, name string) (*model.Content, error) {
	v, ok := c.Field(name)
	if !ok {
		return nil, &BadFieldError{Kind: c.Kind(), Field: name, Want: model.ValContent}
	}
	sub, ok := v.AsContent()
	if !ok {
		return nil, &BadFieldError{Kind: c.Kind(), Field: name, Want: model.ValContent}
	}
	return sub, nil
}
