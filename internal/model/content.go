package model

import (
	"strings"
)

// Field is one named value of a content node.
type Field struct {
	Name  string
	Value Value
}

// Content is one immutable node of the content tree. Nodes are shared by
// reference: the same instance may sit in the tree under layout and in
// introspection query results at once. All mutation helpers return new
// nodes.
type Content struct {
	kind   NodeKind
	fields []Field
	digest Digest
}

// New creates a content node. The field slice is owned by the node after
// the call.
func New(kind NodeKind, fields ...Field) *Content {
	c := &Content{kind: kind, fields: fields}
	c.digest = c.computeDigest()
	return c
}

// Empty is the empty sequence.
func Empty() *Content {
	return Sequence()
}

// Sequence wraps an ordered list of children into a single node. Nested
// sequences are spliced so that document order stays flat.
func Sequence(children ...*Content) *Content {
	flat := make([]Value, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.kind == KindSequence {
			for _, sub := range child.Children() {
				flat = append(flat, ContentValue(sub))
			}
			continue
		}
		flat = append(flat, ContentValue(child))
	}
	return New(KindSequence, Field{Name: "children", Value: Array(flat)})
}

// Styled wraps a node with a style map that cascades onto it and its
// subtree during realization.
func Styled(child *Content, m *StyleMap) *Content {
	if m == nil || m.Len() == 0 {
		return child
	}
	return New(KindStyled,
		Field{Name: "child", Value: ContentValue(child)},
		Field{Name: "styles", Value: StylesValue(m)},
	)
}

// Kind returns the node's kind.
func (c *Content) Kind() NodeKind { return c.kind }

// Caps returns the capability set declared for the node's kind.
func (c *Content) Caps() CapabilitySet { return KindCaps(c.kind) }

// Digest returns the structural hash of the node.
func (c *Content) Digest() Digest { return c.digest }

// Equal reports structural equality.
func (c *Content) Equal(other *Content) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.digest == other.digest
}

// Field looks up a named field.
func (c *Content) Field(name string) (Value, bool) {
	for i := range c.fields {
		if c.fields[i].Name == name {
			return c.fields[i].Value, true
		}
	}
	return Value{}, false
}

// FieldOr returns the field value or a fallback.
func (c *Content) FieldOr(name string, fallback Value) Value {
	if v, ok := c.Field(name); ok {
		return v
	}
	return fallback
}

// Fields returns the node's fields in order. Read-only.
func (c *Content) Fields() []Field { return c.fields }

// WithField returns a copy of the node with the field set, replacing an
// existing entry of the same name or appending a new one.
func (c *Content) WithField(name string, v Value) *Content {
	fields := make([]Field, len(c.fields), len(c.fields)+1)
	copy(fields, c.fields)
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Value = v
			return New(c.kind, fields...)
		}
	}
	fields = append(fields, Field{Name: name, Value: v})
	return New(c.kind, fields...)
}

// IsSequence reports whether the node is a sequence wrapper.
func (c *Content) IsSequence() bool { return c.kind == KindSequence }

// IsStyled reports whether the node is a styled wrapper.
func (c *Content) IsStyled() bool { return c.kind == KindStyled }

// Children returns the children of a sequence node, or nil for other
// kinds.
func (c *Content) Children() []*Content {
	if c.kind != KindSequence {
		return nil
	}
	arr, ok := c.FieldOr("children", Value{}).AsArray()
	if !ok {
		return nil
	}
	children := make([]*Content, 0, len(arr))
	for _, v := range arr {
		if child, ok := v.AsContent(); ok {
			children = append(children, child)
		}
	}
	return children
}

// StyledParts decomposes a styled wrapper into its child and style map.
func (c *Content) StyledParts() (*Content, *StyleMap, bool) {
	if c.kind != KindStyled {
		return nil, nil, false
	}
	childVal, _ := c.Field("child")
	stylesVal, _ := c.Field("styles")
	child, ok1 := childVal.AsContent()
	m, ok2 := stylesVal.AsStyles()
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return child, m, true
}

func (c *Content) computeDigest() Digest {
	d := newDigester()
	d.writeString(string(c.kind))
	d.writeUint64(uint64(len(c.fields)))
	for _, f := range c.fields {
		d.writeString(f.Name)
		f.Value.hash(d)
	}
	return d.sum()
}

func (c *Content) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.kind))
	sb.WriteByte('(')
	for i, f := range c.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Value.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
