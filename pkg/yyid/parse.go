package yyid

import (
	"errors"
	"fmt"
)

// Parse errors. Both are wrapped with positional context.
var (
	ErrInvalidLength = errors.New("yyid: invalid length")
	ErrInvalidFormat = errors.New("yyid: invalid format")
)

// Parse decodes s in any of the four canonical layouts, selected by length:
// simple (32), hyphenated (36), braced (38) or URN (45). Hex digits may be
// upper or lower case; punctuation must be exact, including the lower-case
// urn:yyid: prefix.
func Parse(s string) (YYID, error) {
	switch len(s) {
	case SimpleLength:
		return decode(s, false)
	case HyphenatedLength:
		return decode(s, true)
	case BracedLength:
		if s[0] != '{' || s[BracedLength-1] != '}' {
			return Nil, fmt.Errorf("%w: braced form must be wrapped in {}", ErrInvalidFormat)
		}
		return decode(s[1:BracedLength-1], true)
	case URNLength:
		if s[:len(urnPrefix)] != urnPrefix {
			return Nil, fmt.Errorf("%w: URN form must start with %q", ErrInvalidFormat, urnPrefix)
		}
		return decode(s[len(urnPrefix):], true)
	default:
		return Nil, fmt.Errorf("%w: %d characters", ErrInvalidLength, len(s))
	}
}

// MustParse is Parse for trusted input; it panics on error.
func MustParse(s string) YYID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// decode reads 32 hex digits from s, expecting the 8-4-4-4-12 separators
// when hyphens is set. s has already been length-checked by Parse.
func decode(s string, hyphens bool) (YYID, error) {
	var id YYID
	j := 0
	for i := range id {
		if hyphens && (i == 4 || i == 6 || i == 8 || i == 10) {
			if s[j] != '-' {
				return Nil, fmt.Errorf("%w: expected '-' at position %d", ErrInvalidFormat, j)
			}
			j++
		}
		hi, ok1 := unhex(s[j])
		lo, ok2 := unhex(s[j+1])
		if !ok1 || !ok2 {
			return Nil, fmt.Errorf("%w: non-hex digit at position %d", ErrInvalidFormat, j)
		}
		id[i] = hi<<4 | lo
		j += 2
	}
	return id, nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
