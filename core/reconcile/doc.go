// Package reconcile renumbers the blocks of a modified prefab document so that
// they carry the ids of the matching blocks of the original document.
//
// # Architecture
//
// Reconciliation runs in three steps over two parsed documents:
//
// 1. Match: modified blocks are bucketed by descriptor. Original blocks are
// visited in order and each pops the first remaining candidate of its bucket,
// which yields the IDMapping (modified id -> original id).
//
// 2. Rewrite: every maximal digit run of every matched body that is a key of
// the mapping is replaced by the mapped id. This covers the block's own id on
// its "---" line and every reference to other blocks.
//
// 3. Assemble: the modified header followed by the rewritten blocks, in the
// order of the original document.
//
// # Limitations
//
// Blocks sharing a descriptor (for example two colliders on one GameObject) are
// paired first-in first-out on both sides. If such blocks were reordered between
// versions they are paired by position, not by content.
//
// Modified blocks without an original counterpart are dropped from the output;
// structural changes must be accepted as a new original first.
//
// # Usage
//
//	plan, err := reconcile.ReconcileWithPlan(original, modified)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(plan.Document.String())
package reconcile
