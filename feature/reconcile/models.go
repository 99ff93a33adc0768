package reconcile

import (
	"prefab-reconciler/core/prefab"
	"prefab-reconciler/core/reconcile"
)

// ReconcileRequest is the body of POST /reconcile.
type ReconcileRequest struct {
	// Original is the document whose ids are kept.
	Original string `json:"original"`
	// Modified is the document to renumber.
	Modified string `json:"modified"`
}

// ReconcileResponse is the result of POST /reconcile.
type ReconcileResponse struct {
	// Document is the reconciled modified document.
	Document string `json:"document"`
	// Mapping maps modified ids to original ids.
	Mapping reconcile.IDMapping `json:"mapping"`
	// Dropped lists the ids of modified blocks left out of the document.
	Dropped []uint64              `json:"dropped"`
	Summary reconcile.PlanSummary `json:"summary"`
}

// InspectRequest is the body of POST /reconcile/inspect.
type InspectRequest struct {
	Document string `json:"document"`
}

// BlockInfo describes one block of an inspected document.
type BlockInfo struct {
	ID   uint64 `json:"id"`
	Kind string `json:"kind"`
	Type string `json:"type,omitempty"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// InspectResponse is the result of POST /reconcile/inspect.
type InspectResponse struct {
	HeaderSize int         `json:"header_size"`
	Blocks     []BlockInfo `json:"blocks"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func newReconcileResponse(plan *reconcile.ReconcilePlan) ReconcileResponse {
	dropped := make([]uint64, 0, len(plan.Dropped))
	for _, b := range plan.Dropped {
		dropped = append(dropped, b.ID)
	}
	return ReconcileResponse{
		Document: plan.Document.String(),
		Mapping:  plan.Mapping,
		Dropped:  dropped,
		Summary:  plan.Summary,
	}
}

// NewInspectResponse describes doc for display.
func NewInspectResponse(doc *prefab.Document) InspectResponse {
	blocks := make([]BlockInfo, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		info := BlockInfo{ID: b.ID, Name: b.Descriptor.Name, Size: len(b.Body)}
		switch b.Descriptor.Kind {
		case prefab.KindNamedEntity:
			info.Kind = "named_entity"
		case prefab.KindComponent:
			info.Kind = "component"
			info.Type = b.Descriptor.Type
		}
		blocks = append(blocks, info)
	}
	return InspectResponse{HeaderSize: len(doc.Header), Blocks: blocks}
}
