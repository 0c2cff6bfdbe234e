package model

// PropertyKey addresses one styleable property of one node kind.
type PropertyKey struct {
	Kind NodeKind
	Name string
}

// Property is one style override, ready to be collected into a StyleMap.
type Property struct {
	Kind  NodeKind
	Name  string
	Value Value
}

// Set is shorthand for building a Property.
func Set(kind NodeKind, name string, v Value) Property {
	return Property{Kind: kind, Name: name, Value: v}
}

// StyleMap is an immutable collection of style overrides. When the same
// key appears twice the later entry wins.
type StyleMap struct {
	props  []Property
	digest Digest
}

// NewStyleMap collects properties into a map. The slice is owned by the
// map after the call.
func NewStyleMap(props ...Property) *StyleMap {
	m := &StyleMap{props: props}
	d := newDigester()
	d.writeUint64(uint64(len(props)))
	for _, p := range props {
		d.writeString(string(p.Kind))
		d.writeString(p.Name)
		p.Value.hash(d)
	}
	m.digest = d.sum()
	return m
}

// Len returns the number of overrides.
func (m *StyleMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.props)
}

// Digest returns the structural hash of the map.
func (m *StyleMap) Digest() Digest {
	if m == nil {
		return Digest{}
	}
	return m.digest
}

// Get looks up a key; the latest matching entry wins.
func (m *StyleMap) Get(key PropertyKey) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	for i := len(m.props) - 1; i >= 0; i-- {
		if m.props[i].Kind == key.Kind && m.props[i].Name == key.Name {
			return m.props[i].Value, true
		}
	}
	return Value{}, false
}

// Properties returns the overrides in order. Read-only.
func (m *StyleMap) Properties() []Property {
	if m == nil {
		return nil
	}
	return m.props
}

// chainNode is one link of a persistent style chain. Links are never
// mutated; extending a chain allocates one node sharing the tail.
type chainNode struct {
	m      *StyleMap
	tail   *chainNode
	digest Digest
}

// StyleChain is a persistent list of style maps, innermost first. The
// zero chain resolves nothing; build real chains with NewChain.
type StyleChain struct {
	head *chainNode
}

// NewChain starts a chain at the root style map (usually the library
// defaults).
func NewChain(root *StyleMap) StyleChain {
	return StyleChain{}.Extend(root)
}

// Extend pushes a map as the new innermost link, sharing the tail with
// the receiver. Extending with a nil or empty map returns the chain
// unchanged.
func (c StyleChain) Extend(m *StyleMap) StyleChain {
	if m.Len() == 0 {
		return c
	}
	node := &chainNode{m: m, tail: c.head}
	if c.head == nil {
		node.digest = m.Digest()
	} else {
		node.digest = CombineDigests(m.Digest(), c.head.digest)
	}
	return StyleChain{head: node}
}

// Get resolves a property by walking the chain from innermost outward.
func (c StyleChain) Get(kind NodeKind, name string) (Value, bool) {
	key := PropertyKey{Kind: kind, Name: name}
	for node := c.head; node != nil; node = node.tail {
		if v, ok := node.m.Get(key); ok {
			return v, true
		}
	}
	return Value{}, false
}

// GetOr resolves a property, falling back to the given default.
func (c StyleChain) GetOr(kind NodeKind, name string, fallback Value) Value {
	if v, ok := c.Get(kind, name); ok {
		return v
	}
	return fallback
}

// Digest returns the structural hash of the whole chain, usable as a
// memoization key component.
func (c StyleChain) Digest() Digest {
	if c.head == nil {
		return Digest{}
	}
	return c.head.digest
}
