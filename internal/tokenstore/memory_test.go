package tokenstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(TokenKey)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySetGetDelete(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Set(TokenKey, "tok1"))
	v, err := m.Get(TokenKey)
	require.NoError(t, err)
	require.Equal(t, "tok1", v)

	// Overwrite replaces the single slot.
	require.NoError(t, m.Set(TokenKey, "tok2"))
	v, err = m.Get(TokenKey)
	require.NoError(t, err)
	require.Equal(t, "tok2", v)

	require.NoError(t, m.Delete(TokenKey))
	_, err = m.Get(TokenKey)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteIdempotent(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Delete(TokenKey))
	require.NoError(t, m.Delete(TokenKey))
}
