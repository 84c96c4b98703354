package yyid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUUID(t *testing.T) {
	u := uuid.New()
	id := FromUUID(u)
	assert.Equal(t, u.String(), id.Hyphenated().String())
	assert.Equal(t, u[:], id.Bytes())
}

func TestUUIDRoundTrip(t *testing.T) {
	u := uuid.New()
	got, err := FromUUID(u).UUID()
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestUUIDRejectsNonUUIDPatterns(t *testing.T) {
	// Version nibble 0.
	_, err := MustParse("00000000-0000-0000-0000-000000000000").UUID()
	assert.Error(t, err)

	// Version 4 but non-RFC variant bits.
	_, err = MustParse("02e7f0f6-067e-4c92-025c-12c9180540a9").UUID()
	assert.Error(t, err)
}
