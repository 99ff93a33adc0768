package reconcile

import "prefab-reconciler/core/prefab"

// IDMapping maps a modified document id to the original document id of the same entity.
type IDMapping map[uint64]uint64

// ReconcilePlan is the outcome of reconciling two documents.
type ReconcilePlan struct {
	// Document is the reconciled document: the modified header followed by the
	// rewritten blocks in original order.
	Document *prefab.Document `json:"-"`

	// Mapping is the id mapping applied to the modified blocks.
	Mapping IDMapping `json:"mapping"`

	// Dropped lists the modified blocks that had no original counterpart.
	Dropped []prefab.Block `json:"-"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// OriginalBlocks is the number of blocks in the original document.
	OriginalBlocks int `json:"original_blocks"`

	// ModifiedBlocks is the number of blocks in the modified document.
	ModifiedBlocks int `json:"modified_blocks"`

	// Remapped counts matched blocks whose id changed.
	Remapped int `json:"remapped"`

	// Dropped counts modified blocks left out of the output.
	Dropped int `json:"dropped"`

	// Changed is true when the output differs from the modified document.
	Changed bool `json:"changed"`
}
