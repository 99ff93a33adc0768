package reconcile

import (
	"fmt"

	"prefab-reconciler/core/prefab"
)

// ReconcileWithPlan reconciles modified against original and returns the plan
// holding the reconciled document. Neither input is modified.
func ReconcileWithPlan(original, modified *prefab.Document) (*ReconcilePlan, error) {
	if original.Header != modified.Header {
		return nil, fmt.Errorf("%w: original header is %d bytes, modified header is %d bytes",
			ErrHeaderMismatch, len(original.Header), len(modified.Header))
	}

	matching, err := Match(original.Blocks, modified.Blocks)
	if err != nil {
		return nil, err
	}

	blocks := matching.Blocks
	for i := range blocks {
		blocks[i].Body = Rewrite(blocks[i].Body, matching.Mapping)
		blocks[i].ID = matching.Mapping[blocks[i].ID]
	}

	doc := &prefab.Document{
		Header: modified.Header,
		Blocks: blocks,
	}

	return &ReconcilePlan{
		Document: doc,
		Mapping:  matching.Mapping,
		Dropped:  matching.Dropped,
		Summary:  buildSummary(modified, doc, matching),
	}, nil
}

// ReconcileText parses both texts with dialect and reconciles them.
func ReconcileText(dialect prefab.Dialect, original, modified string) (*ReconcilePlan, error) {
	orig, err := dialect.Parse(original)
	if err != nil {
		return nil, fmt.Errorf("failed to parse original: %w", err)
	}
	mod, err := dialect.Parse(modified)
	if err != nil {
		return nil, fmt.Errorf("failed to parse modified: %w", err)
	}
	return ReconcileWithPlan(orig, mod)
}

func buildSummary(modified, out *prefab.Document, matching *Matching) PlanSummary {
	remapped := 0
	for from, to := range matching.Mapping {
		if from != to {
			remapped++
		}
	}

	changed := len(out.Blocks) != len(modified.Blocks)
	if !changed {
		for i := range out.Blocks {
			if out.Blocks[i].Body != modified.Blocks[i].Body {
				changed = true
				break
			}
		}
	}

	return PlanSummary{
		OriginalBlocks: len(out.Blocks),
		ModifiedBlocks: len(modified.Blocks),
		Remapped:       remapped,
		Dropped:        len(matching.Dropped),
		Changed:        changed,
	}
}
