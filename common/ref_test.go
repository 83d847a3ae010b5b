package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nascentdigital/scene/sceneerror"
)

func TestRef(t *testing.T) {
	t.Parallel()

	r := NewRef[*stubPage]()
	assert.False(t, r.HasValue())

	_, err := r.Value()
	require.ErrorIs(t, err, sceneerror.ErrIllegalState)
	assert.ErrorContains(t, err, "attempt to dereference unset value")

	v, ok := r.Current()
	assert.False(t, ok)
	assert.Nil(t, v)

	p := &stubPage{id: 1}
	r.Set(p)
	assert.True(t, r.HasValue())
	got, err := r.Value()
	require.NoError(t, err)
	assert.Same(t, p, got)

	r.Clear()
	assert.False(t, r.HasValue())
	_, err = r.Value()
	assert.ErrorIs(t, err, sceneerror.ErrIllegalState)
	assert.False(t, p.closed, "clearing does not release the instance")
}

func TestRefOfZeroValue(t *testing.T) {
	t.Parallel()

	r := NewRefOf(0)
	v, err := r.Value()
	require.NoError(t, err)
	assert.Equal(t, 0, v, "a zero value is still a bound value")
}

func TestUnbind(t *testing.T) {
	t.Parallel()

	t.Run("unset", func(t *testing.T) {
		t.Parallel()

		err := unbind(NewRef[*stubPage](), kindPage, nil)
		assert.ErrorIs(t, err, sceneerror.ErrIllegalState)
	})

	t.Run("closes_and_clears", func(t *testing.T) {
		t.Parallel()

		p := &stubPage{}
		r := NewRefOf(p)
		require.NoError(t, unbind(r, kindPage, nil))
		assert.True(t, p.closed)
		assert.False(t, r.HasValue())
	})
}
