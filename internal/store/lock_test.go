//go:build unix

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockIsExclusive(t *testing.T) {
	dir := t.TempDir()

	first, err := Lock(dir)
	require.NoError(t, err)

	_, err = Lock(dir)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, first.Unlock())
	require.NoError(t, first.Unlock())

	again, err := Lock(dir)
	require.NoError(t, err)
	require.NoError(t, again.Unlock())
}
