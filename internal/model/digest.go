package model

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
)

// Digest is a structural content hash. Two model values with equal digests
// are treated as structurally equal everywhere in the core.
type Digest [sha256.Size]byte

// Short returns an abbreviated hex form for logs and debug output.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:6])
}

// Uint64 folds the digest down to 64 bits, for use as a compact map key.
func (d Digest) Uint64() uint64 {
	return binary.LittleEndian.Uint64(d[:8])
}

// digester accumulates structural data into a sha256 state.
type digester struct {
	h hash.Hash
}

func newDigester() *digester {
	return &digester{h: sha256.New()}
}

func (d *digester) sum() Digest {
	var out Digest
	copy(out[:], d.h.Sum(nil))
	return out
}

func (d *digester) writeByte(b byte) {
	_, _ = d.h.Write([]byte{b})
}

func (d *digester) writeUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = d.h.Write(buf[:])
}

func (d *digester) writeUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.h.Write(buf[:])
}

func (d *digester) writeFloat(v float64) {
	d.writeUint64(math.Float64bits(v))
}

// writeString writes the string length-prefixed so that adjacent strings
// cannot collide by concatenation.
func (d *digester) writeString(s string) {
	d.writeUint64(uint64(len(s)))
	_, _ = d.h.Write([]byte(s))
}

func (d *digester) writeDigest(other Digest) {
	_, _ = d.h.Write(other[:])
}

// CombineDigests hashes a sequence of digests into one, preserving order.
func CombineDigests(parts ...Digest) Digest {
	d := newDigester()
	for _, p := range parts {
		d.writeDigest(p)
	}
	return d.sum()
}
