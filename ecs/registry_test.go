package ecs_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockstep/ecs"
	"lockstep/internal/logging"
)

type sword struct{ strength float64 }

type shield struct{ kind byte }

func TestRegistry_Create(t *testing.T) {
	r := ecs.NewRegistry[sword, shield](3)
	require.Equal(t, 3, r.Size())
	require.Equal(t, 3, r.Available())
	require.Equal(t, 0, r.InUse())

	var ids []int
	for range 3 {
		ids = append(ids, r.Create())
	}
	require.Equal(t, []int{0, 1, 2}, ids)
	require.Equal(t, 0, r.Available())
	require.Equal(t, 3, r.InUse())
	for _, id := range ids {
		require.True(t, r.Alive(id))
		require.False(t, r.Has1(id))
		require.False(t, r.Has2(id))
	}
}

func TestRegistry_Growth(t *testing.T) {
	var buf bytes.Buffer
	logging.SetGlobalLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { logging.SetGlobalLogger(zerolog.Nop()) })

	r := ecs.NewRegistry[sword, shield](2)

	var ids []int
	for range 4 {
		ids = append(ids, r.Create())
	}
	// storage doubles once and ids keep ascending
	require.Equal(t, []int{0, 1, 2, 3}, ids)
	require.Equal(t, 4, r.Size())
	require.Equal(t, 0, r.Available())
	require.Contains(t, buf.String(), `"from":2`)
	require.Contains(t, buf.String(), `"to":4`)

	r.Create()
	require.Equal(t, 8, r.Size())
	require.Equal(t, 3, r.Available())

	t.Run("empty registry grows to one", func(t *testing.T) {
		r := ecs.NewRegistry[sword, shield](0)
		require.Equal(t, 0, r.Create())
		require.Equal(t, 1, r.Size())
		require.Equal(t, 1, r.Create())
		require.Equal(t, 2, r.Size())
	})

	require.Panics(t, func() { ecs.NewRegistry[sword, shield](-1) })
}

func TestRegistry_Components(t *testing.T) {
	r := ecs.NewRegistry[sword, shield](4)
	id := r.Create()

	_, err := r.Get1(id)
	require.ErrorIs(t, err, ecs.ErrNoComponent)

	require.NoError(t, r.Emplace1(id, sword{strength: 1}))
	require.True(t, r.Has1(id))
	require.False(t, r.Has2(id))

	s, err := r.Get1(id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.strength)

	// pointers write through
	s.strength = 2.5
	s, _ = r.Get1(id)
	assert.Equal(t, 2.5, s.strength)

	require.NoError(t, r.Emplace2(id, shield{kind: 'k'}))
	sh, err := r.Get2(id)
	require.NoError(t, err)
	assert.Equal(t, byte('k'), sh.kind)

	require.NoError(t, r.Remove1(id))
	require.False(t, r.Has1(id))
	require.True(t, r.Has2(id))
	require.NoError(t, r.Remove2(id))
	_, err = r.Get2(id)
	require.ErrorIs(t, err, ecs.ErrNoComponent)
}

func TestRegistry_UnknownEntity(t *testing.T) {
	r := ecs.NewRegistry[sword, shield](2)
	created := r.Create()

	for _, id := range []int{-1, 1, 2, 100} {
		require.False(t, r.Alive(id), "Alive(%d)", id)
		require.False(t, r.Has1(id), "Has1(%d)", id)
		require.ErrorIs(t, r.Emplace1(id, sword{}), ecs.ErrUnknownEntity, "Emplace1(%d)", id)
		require.ErrorIs(t, r.Emplace2(id, shield{}), ecs.ErrUnknownEntity, "Emplace2(%d)", id)
		_, err := r.Get1(id)
		require.ErrorIs(t, err, ecs.ErrUnknownEntity, "Get1(%d)", id)
		_, err = r.Get2(id)
		require.ErrorIs(t, err, ecs.ErrUnknownEntity, "Get2(%d)", id)
		require.ErrorIs(t, r.Erase(id), ecs.ErrUnknownEntity, "Erase(%d)", id)
		require.ErrorIs(t, r.Remove1(id), ecs.ErrUnknownEntity, "Remove1(%d)", id)
	}
	require.True(t, r.Alive(created))
}

func TestRegistry_Erase(t *testing.T) {
	r := ecs.NewRegistry[sword, shield](2)
	a, b := r.Create(), r.Create()
	require.NoError(t, r.Emplace1(a, sword{strength: 3}))
	require.NoError(t, r.Emplace2(a, shield{kind: 'x'}))

	require.NoError(t, r.Erase(a))
	require.False(t, r.Alive(a))
	require.Equal(t, 1, r.InUse())
	require.Equal(t, 1, r.Available())

	// double erase is rejected
	require.ErrorIs(t, r.Erase(a), ecs.ErrUnknownEntity)

	// the freed id is reused with empty components
	reused := r.Create()
	require.Equal(t, a, reused)
	require.False(t, r.Has1(reused))
	require.False(t, r.Has2(reused))
	require.True(t, r.Alive(b))
}

func TestRegistry_Each(t *testing.T) {
	r := ecs.NewRegistry[sword, shield](4)
	for range 4 {
		r.Create()
	}
	require.NoError(t, r.Emplace1(0, sword{strength: 1}))
	require.NoError(t, r.Emplace1(1, sword{strength: 2}))
	require.NoError(t, r.Emplace2(1, shield{kind: 'a'}))
	require.NoError(t, r.Emplace1(3, sword{strength: 4}))
	require.NoError(t, r.Emplace2(3, shield{kind: 'b'}))
	require.NoError(t, r.Emplace2(2, shield{kind: 'c'}))

	var both []int
	r.Each(func(id int, s *sword, sh *shield) bool {
		both = append(both, id)
		s.strength *= 10
		return true
	})
	assert.Equal(t, []int{1, 3}, both)
	assert.Equal(t, 2, r.Count())

	var strengths []float64
	r.Each1(func(_ int, s *sword) bool {
		strengths = append(strengths, s.strength)
		return true
	})
	assert.Equal(t, []float64{1, 20, 40}, strengths)

	var kinds []byte
	r.Each2(func(_ int, sh *shield) bool {
		kinds = append(kinds, sh.kind)
		return len(kinds) < 2
	})
	assert.Equal(t, []byte{'a', 'c'}, kinds)

	require.NoError(t, r.Erase(3))
	both = nil
	r.Each(func(id int, _ *sword, _ *shield) bool {
		both = append(both, id)
		return true
	})
	assert.Equal(t, []int{1}, both)
	assert.Equal(t, 1, r.Count())
}
