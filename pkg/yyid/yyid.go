package yyid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// YYID is a 128-bit random identifier stored as 16 bytes. No byte carries
// structural meaning; every bit comes from the entropy source.
type YYID [16]byte

// Nil is the distinguished all-zero identifier.
var Nil YYID

// Generator produces YYIDs from an injectable entropy source. The default
// source is crypto/rand. A Generator holds no mutable state and is safe for
// concurrent use as long as its reader is.
type Generator struct {
	rand io.Reader
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand sets the entropy source. Meant for deterministic tests;
// production callers should keep the crypto/rand default.
func WithRand(r io.Reader) GeneratorOption {
	return func(g *Generator) { g.rand = r }
}

// NewGenerator creates a Generator, reading from crypto/rand unless
// overridden by WithRand.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// New returns a random YYID. It panics if the entropy source fails; see
// NewRandom for a fallible variant.
func New() YYID { return defaultGenerator.New() }

// NewRandom returns a random YYID, or an error if the entropy source fails.
func NewRandom() (YYID, error) { return defaultGenerator.NewRandom() }

// New returns a random YYID from the generator's source. It panics if the
// source fails: an identifier built from degraded randomness must never be
// returned as if it were sound.
func (g *Generator) New() YYID {
	id, err := g.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("yyid: entropy source failed: %v", err))
	}
	return id
}

// NewRandom returns a random YYID from the generator's source, or an error
// if the source cannot fill all 16 bytes.
func (g *Generator) NewRandom() (YYID, error) {
	var id YYID
	if _, err := io.ReadFull(g.rand, id[:]); err != nil {
		return Nil, fmt.Errorf("yyid: read entropy: %w", err)
	}
	return id, nil
}

// IsNil reports whether every byte is zero.
func (id YYID) IsNil() bool { return id == Nil }

// Bytes returns a copy of the raw 16-byte representation.
func (id YYID) Bytes() []byte { b := make([]byte, 16); copy(b, id[:]); return b }

// FromBytes builds a YYID from exactly 16 bytes.
func FromBytes(b []byte) (YYID, error) {
	var id YYID
	if len(b) != len(id) {
		return Nil, fmt.Errorf("yyid: invalid byte length %d, want %d", len(b), len(id))
	}
	copy(id[:], b)
	return id, nil
}

// Uint128 returns the identifier as a 128-bit big-endian integer split into
// high and low 64-bit halves. Byte 0 is the most significant byte of hi.
func (id YYID) Uint128() (hi, lo uint64) {
	return binary.BigEndian.Uint64(id[0:8]), binary.BigEndian.Uint64(id[8:16])
}

// Uint128LE returns the identifier as a 128-bit little-endian integer split
// into high and low 64-bit halves. Byte 0 is the least significant byte of lo.
func (id YYID) Uint128LE() (hi, lo uint64) {
	return binary.LittleEndian.Uint64(id[8:16]), binary.LittleEndian.Uint64(id[0:8])
}

// FromUint128 builds a YYID from the big-endian halves produced by Uint128.
func FromUint128(hi, lo uint64) YYID {
	var id YYID
	binary.BigEndian.PutUint64(id[0:8], hi)
	binary.BigEndian.PutUint64(id[8:16], lo)
	return id
}

// FromUint128LE builds a YYID from the little-endian halves produced by
// Uint128LE.
func FromUint128LE(hi, lo uint64) YYID {
	var id YYID
	binary.LittleEndian.PutUint64(id[0:8], lo)
	binary.LittleEndian.PutUint64(id[8:16], hi)
	return id
}

// Compare returns -1, 0, 1 based on lexical byte comparison.
func (id YYID) Compare(other YYID) int {
	for idx := 0; idx < len(id); idx++ {
		if id[idx] < other[idx] {
			return -1
		}
		if id[idx] > other[idx] {
			return 1
		}
	}
	return 0
}

// String returns the canonical form: lower-case hyphenated.
func (id YYID) String() string { return id.Hyphenated().String() }

// MarshalText renders the canonical lower-case hyphenated form.
func (id YYID) MarshalText() ([]byte, error) {
	return id.Hyphenated().EncodeLower(make([]byte, HyphenatedLength)), nil
}

// UnmarshalText parses any of the four canonical layouts; see Parse.
func (id *YYID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
