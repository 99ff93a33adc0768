package reconcile

import (
	"fmt"

	"prefab-reconciler/core/prefab"
)

// Matching is the result of pairing original blocks with modified blocks.
type Matching struct {
	// Blocks are copies of the matched modified blocks, in original order.
	Blocks []prefab.Block

	// Mapping maps every matched modified id to its original id.
	Mapping IDMapping

	// Dropped are the modified blocks no original block claimed, in modified order.
	Dropped []prefab.Block
}

// Match pairs every original block with the first unclaimed modified block of
// equal descriptor. It fails with ErrUnmatchedDescriptor when an original block
// has no candidate left and with ErrDuplicateTargetID when a modified id is
// claimed twice or two modified ids map to the same original id.
func Match(original, modified []prefab.Block) (*Matching, error) {
	// Buckets hold indices into modified, in document order.
	buckets := make(map[prefab.Descriptor][]int, len(modified))
	for i, blk := range modified {
		buckets[blk.Descriptor] = append(buckets[blk.Descriptor], i)
	}

	claimed := make([]bool, len(modified))
	targets := make(map[uint64]uint64, len(original))
	result := &Matching{
		Blocks:  make([]prefab.Block, 0, len(original)),
		Mapping: make(IDMapping, len(original)),
	}

	for _, orig := range original {
		candidates := buckets[orig.Descriptor]
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: no block found for %s (original id %d)", ErrUnmatchedDescriptor, orig.Descriptor, orig.ID)
		}
		idx := candidates[0]
		buckets[orig.Descriptor] = candidates[1:]
		claimed[idx] = true

		mod := modified[idx]
		if prev, ok := result.Mapping[mod.ID]; ok {
			return nil, fmt.Errorf("%w: modified id %d already mapped to %d", ErrDuplicateTargetID, mod.ID, prev)
		}
		if prev, ok := targets[orig.ID]; ok {
			return nil, fmt.Errorf("%w: original id %d already claimed by modified id %d", ErrDuplicateTargetID, orig.ID, prev)
		}
		result.Mapping[mod.ID] = orig.ID
		targets[orig.ID] = mod.ID
		result.Blocks = append(result.Blocks, mod)
	}

	for i, blk := range modified {
		if !claimed[i] {
			result.Dropped = append(result.Dropped, blk)
		}
	}

	return result, nil
}
