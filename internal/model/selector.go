package model

import "strings"

// FieldFilter is one field-equality predicate of a selector.
type FieldFilter struct {
	Name  string
	Value Value
}

// Selector is a restricted node predicate: a kind plus zero or more field
// equality filters. Free-form predicates are deliberately not supported
// so query results stay memoization-stable.
type Selector struct {
	Kind    NodeKind
	Filters []FieldFilter
}

// SelectKind matches every node of the given kind.
func SelectKind(kind NodeKind) Selector {
	return Selector{Kind: kind}
}

// WithField narrows the selector with a field-equality filter.
func (s Selector) WithField(name string, v Value) Selector {
	filters := make([]FieldFilter, len(s.Filters), len(s.Filters)+1)
	copy(filters, s.Filters)
	filters = append(filters, FieldFilter{Name: name, Value: v})
	return Selector{Kind: s.Kind, Filters: filters}
}

// Matches evaluates the predicate against a node.
func (s Selector) Matches(c *Content) bool {
	if c == nil || c.Kind() != s.Kind {
		return false
	}
	for _, f := range s.Filters {
		v, ok := c.Field(f.Name)
		if !ok || !v.Equal(f.Value) {
			return false
		}
	}
	return true
}

// Digest returns the structural hash of the selector, used to key
// recorded introspection queries.
func (s Selector) Digest() Digest {
	d := newDigester()
	d.writeString(string(s.Kind))
	d.writeUint64(uint64(len(s.Filters)))
	for _, f := range s.Filters {
		d.writeString(f.Name)
		f.Value.hash(d)
	}
	return d.sum()
}

func (s Selector) String() string {
	var sb strings.Builder
	sb.WriteString("kind == ")
	sb.WriteString(string(s.Kind))
	for _, f := range s.Filters {
		sb.WriteString(" and ")
		sb.WriteString(f.Name)
		sb.WriteString(" == ")
		sb.WriteString(f.Value.String())
	}
	return sb.String()
}
