package reconcile

import (
	"testing"

	"prefab-reconciler/core/prefab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(id uint64, d prefab.Descriptor) prefab.Block {
	return prefab.Block{ID: id, Descriptor: d}
}

func TestMatch(t *testing.T) {
	player := prefab.NamedEntity("Player")
	transform := prefab.Component("Transform:", "Player")

	t.Run("RenumberedEntities", func(t *testing.T) {
		original := []prefab.Block{block(1, player), block(2, transform)}
		modified := []prefab.Block{block(10, transform), block(9, player)}

		m, err := Match(original, modified)
		require.NoError(t, err)
		assert.Equal(t, IDMapping{9: 1, 10: 2}, m.Mapping)
		require.Len(t, m.Blocks, 2)
		// Output follows original order.
		assert.Equal(t, uint64(9), m.Blocks[0].ID)
		assert.Equal(t, uint64(10), m.Blocks[1].ID)
		assert.Empty(t, m.Dropped)
	})

	t.Run("SameDescriptorIsFIFO", func(t *testing.T) {
		collider := prefab.Component("BoxCollider:", "Player")
		original := []prefab.Block{block(3, collider), block(4, collider)}
		modified := []prefab.Block{block(30, collider), block(31, collider)}

		m, err := Match(original, modified)
		require.NoError(t, err)
		assert.Equal(t, IDMapping{30: 3, 31: 4}, m.Mapping)
	})

	t.Run("ExtraModifiedBlocksDropped", func(t *testing.T) {
		light := prefab.Component("Light:", "Player")
		original := []prefab.Block{block(1, player)}
		modified := []prefab.Block{block(5, light), block(9, player), block(6, transform)}

		m, err := Match(original, modified)
		require.NoError(t, err)
		assert.Equal(t, IDMapping{9: 1}, m.Mapping)
		require.Len(t, m.Dropped, 2)
		assert.Equal(t, uint64(5), m.Dropped[0].ID)
		assert.Equal(t, uint64(6), m.Dropped[1].ID)
	})

	t.Run("Unmatched", func(t *testing.T) {
		original := []prefab.Block{block(1, player), block(2, transform)}
		modified := []prefab.Block{block(9, player)}

		_, err := Match(original, modified)
		assert.ErrorIs(t, err, ErrUnmatchedDescriptor)
		assert.Contains(t, err.Error(), `Component("Transform:", "Player")`)
	})

	t.Run("BucketExhausted", func(t *testing.T) {
		original := []prefab.Block{block(1, player), block(2, player)}
		modified := []prefab.Block{block(9, player)}

		_, err := Match(original, modified)
		assert.ErrorIs(t, err, ErrUnmatchedDescriptor)
	})

	t.Run("DuplicateModifiedID", func(t *testing.T) {
		original := []prefab.Block{block(1, player), block(2, transform)}
		modified := []prefab.Block{block(9, player), block(9, transform)}

		_, err := Match(original, modified)
		assert.ErrorIs(t, err, ErrDuplicateTargetID)
	})

	t.Run("DuplicateOriginalID", func(t *testing.T) {
		original := []prefab.Block{block(1, player), block(1, transform)}
		modified := []prefab.Block{block(9, player), block(10, transform)}

		_, err := Match(original, modified)
		assert.ErrorIs(t, err, ErrDuplicateTargetID)
	})

	t.Run("Bijection", func(t *testing.T) {
		enemy := prefab.NamedEntity("Enemy")
		rb := prefab.Component("Rigidbody:", "Enemy")
		original := []prefab.Block{block(1, player), block(2, transform), block(3, enemy), block(4, rb)}
		modified := []prefab.Block{block(40, rb), block(30, enemy), block(20, transform), block(10, player)}

		m, err := Match(original, modified)
		require.NoError(t, err)
		require.Len(t, m.Mapping, 4)

		seen := make(map[uint64]bool)
		for _, to := range m.Mapping {
			assert.False(t, seen[to], "value %d mapped twice", to)
			seen[to] = true
		}
		for _, b := range original {
			assert.True(t, seen[b.ID])
		}
	})
}
