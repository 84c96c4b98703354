package yyid

// Hex digit lookup tables shared by every encoding.
const (
	lowerhex = "0123456789abcdef"
	upperhex = "0123456789ABCDEF"
)

const urnPrefix = "urn:yyid:"

// Encoded lengths, fixed per form.
const (
	SimpleLength     = 32
	HyphenatedLength = 36
	BracedLength     = 38
	URNLength        = 45
)

// Simple formats a YYID as 32 contiguous hex digits, like
// 02e7f0f6067e8c92b25c12c9180540a9.
type Simple YYID

// Hyphenated formats a YYID in 8-4-4-4-12 groups, like
// 02e7f0f6-067e-8c92-b25c-12c9180540a9.
type Hyphenated YYID

// Braced formats a YYID as the hyphenated form wrapped in braces, like
// {02e7f0f6-067e-8c92-b25c-12c9180540a9}.
type Braced YYID

// URN formats a YYID as a urn:yyid: URN, like
// urn:yyid:02e7f0f6-067e-8c92-b25c-12c9180540a9.
type URN YYID

// encodeHex transcodes src into dst starting at off, two hex digits per
// byte. When hyphens is set, a '-' separator is inserted before byte
// indices 4, 6, 8 and 10, producing the 8-4-4-4-12 grouping. dst must hold
// the full encoded form; a shorter buffer fails the bounds check.
func encodeHex(dst []byte, off int, src YYID, hexdigits string, hyphens bool) {
	j := off
	for i, b := range src {
		if hyphens && (i == 4 || i == 6 || i == 8 || i == 10) {
			dst[j] = '-'
			j++
		}
		dst[j] = hexdigits[b>>4]
		dst[j+1] = hexdigits[b&0x0f]
		j += 2
	}
}

// Simple returns the identifier viewed in the simple form.
func (id YYID) Simple() Simple { return Simple(id) }

// Hyphenated returns the identifier viewed in the hyphenated form.
func (id YYID) Hyphenated() Hyphenated { return Hyphenated(id) }

// Braced returns the identifier viewed in the braced form.
func (id YYID) Braced() Braced { return Braced(id) }

// URN returns the identifier viewed in the URN form.
func (id YYID) URN() URN { return URN(id) }

// YYID returns the underlying identifier.
func (s Simple) YYID() YYID { return YYID(s) }

// EncodeLower writes the lower-case simple form into buf and returns the
// slice of buf holding the encoded text. buf must be at least SimpleLength
// bytes; a shorter buffer is a caller bug and panics.
func (s Simple) EncodeLower(buf []byte) []byte { return s.encode(buf, lowerhex) }

// EncodeUpper is EncodeLower with the upper-case hex table.
func (s Simple) EncodeUpper(buf []byte) []byte { return s.encode(buf, upperhex) }

func (s Simple) encode(buf []byte, hexdigits string) []byte {
	buf = buf[:SimpleLength]
	encodeHex(buf, 0, YYID(s), hexdigits, false)
	return buf
}

// String returns the lower-case simple form.
func (s Simple) String() string {
	return string(s.EncodeLower(make([]byte, SimpleLength)))
}

// YYID returns the underlying identifier.
func (h Hyphenated) YYID() YYID { return YYID(h) }

// EncodeLower writes the lower-case hyphenated form into buf and returns
// the slice of buf holding the encoded text. buf must be at least
// HyphenatedLength bytes; a shorter buffer is a caller bug and panics.
func (h Hyphenated) EncodeLower(buf []byte) []byte { return h.encode(buf, lowerhex) }

// EncodeUpper is EncodeLower with the upper-case hex table.
func (h Hyphenated) EncodeUpper(buf []byte) []byte { return h.encode(buf, upperhex) }

func (h Hyphenated) encode(buf []byte, hexdigits string) []byte {
	buf = buf[:HyphenatedLength]
	encodeHex(buf, 0, YYID(h), hexdigits, true)
	return buf
}

// String returns the lower-case hyphenated form.
func (h Hyphenated) String() string {
	return string(h.EncodeLower(make([]byte, HyphenatedLength)))
}

// YYID returns the underlying identifier.
func (b Braced) YYID() YYID { return YYID(b) }

// EncodeLower writes the lower-case braced form into buf and returns the
// slice of buf holding the encoded text. buf must be at least BracedLength
// bytes; a shorter buffer is a caller bug and panics.
func (b Braced) EncodeLower(buf []byte) []byte { return b.encode(buf, lowerhex) }

// EncodeUpper is EncodeLower with the upper-case hex table.
func (b Braced) EncodeUpper(buf []byte) []byte { return b.encode(buf, upperhex) }

func (b Braced) encode(buf []byte, hexdigits string) []byte {
	buf = buf[:BracedLength]
	buf[0] = '{'
	buf[BracedLength-1] = '}'
	encodeHex(buf, 1, YYID(b), hexdigits, true)
	return buf
}

// String returns the lower-case braced form.
func (b Braced) String() string {
	return string(b.EncodeLower(make([]byte, BracedLength)))
}

// YYID returns the underlying identifier.
func (u URN) YYID() YYID { return YYID(u) }

// EncodeLower writes the lower-case URN form into buf and returns the slice
// of buf holding the encoded text. buf must be at least URNLength bytes; a
// shorter buffer is a caller bug and panics.
func (u URN) EncodeLower(buf []byte) []byte { return u.encode(buf, lowerhex) }

// EncodeUpper is EncodeLower with the upper-case hex table. The urn:yyid:
// prefix stays lower case.
func (u URN) EncodeUpper(buf []byte) []byte { return u.encode(buf, upperhex) }

func (u URN) encode(buf []byte, hexdigits string) []byte {
	buf = buf[:URNLength]
	copy(buf, urnPrefix)
	encodeHex(buf, len(urnPrefix), YYID(u), hexdigits, true)
	return buf
}

// String returns the lower-case URN form.
func (u URN) String() string {
	return string(u.EncodeLower(make([]byte, URNLength)))
}
