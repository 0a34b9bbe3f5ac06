package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_FormatoDeterminista(t *testing.T) {
	at := time.UnixMilli(1740441686722).UTC() // 2025-02-25
	g := &NumberGenerator{
		Prefix: "zyck",
		Clock:  func() time.Time { return at },
		Rand:   bytes.NewReader([]byte{33, 11, 15}),
	}

	n, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ZYCK-20250225-686722-XBF", n)
	assert.True(t, Valid(n))
}

func TestNext_RellenaMilisegundosConCeros(t *testing.T) {
	at := time.Date(2025, 1, 2, 0, 0, 0, 5_000_000, time.UTC) // ...000005 ms
	g := &NumberGenerator{Clock: func() time.Time { return at }, Rand: bytes.NewReader([]byte{0, 0, 0})}

	n, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ZYCK-20250102-000005-000", n)
}

func TestNext_AleatorioReal(t *testing.T) {
	g := NewNumberGenerator("")
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		n, err := g.Next()
		require.NoError(t, err)
		assert.True(t, Valid(n), n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNext_FuenteAgotada(t *testing.T) {
	g := &NumberGenerator{Rand: bytes.NewReader(nil)}
	_, err := g.Next()
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("ZYCK-20250225-686722-XBF"))
	assert.False(t, Valid("ZYCK-2025022-686722-XBF"))
	assert.False(t, Valid("ZYCK-20250225-686722-xbf"))
	assert.False(t, Valid(""))
}
