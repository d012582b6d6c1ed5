package confirm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelRunsNothing(t *testing.T) {
	calls := 0
	g := New()
	g.Open(uint(42), func() error { calls++; return nil })
	g.Cancel()

	assert.Equal(t, 0, calls)
	assert.Nil(t, g.Pending())
}

func TestConfirmRunsExactlyOnce(t *testing.T) {
	calls := 0
	var deleted uint
	g := New()
	g.Open(uint(42), func() error {
		calls++
		deleted = 42
		return nil
	})

	require.Equal(t, uint(42), g.Pending())
	require.NoError(t, g.Confirm())
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint(42), deleted)

	// The gate closed; a second confirm must not re-run the action.
	assert.ErrorIs(t, g.Confirm(), ErrNotOpen)
	assert.Equal(t, 1, calls)
}

func TestConfirmWithoutOpen(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.Confirm(), ErrNotOpen)
}

func TestConfirmPropagatesActionError(t *testing.T) {
	boom := errors.New("delete failed")
	g := New()
	g.Open(uint(7), func() error { return boom })

	assert.ErrorIs(t, g.Confirm(), boom)
	assert.Nil(t, g.Pending())
}

func TestReopenAfterCancel(t *testing.T) {
	calls := 0
	g := New()
	g.Open(uint(1), func() error { calls++; return nil })
	g.Cancel()
	g.Open(uint(2), func() error { calls++; return nil })

	require.NoError(t, g.Confirm())
	assert.Equal(t, 1, calls)
}
