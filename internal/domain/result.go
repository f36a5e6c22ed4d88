package domain

import (
	"time"
)

// NodeValidationIssue reports one unmet requirement on a node.
type NodeValidationIssue struct {
	Requirement     Requirement     `json:"requirement"`
	Message         string          `json:"message"`
	Remediation     string          `json:"remediation"`
	SuggestedBlocks []OperationType `json:"suggestedBlocks"`
}

// NodeValidationResult is the per-node outcome of an analysis pass. It is
// ephemeral: recomputed on every pass, never persisted.
type NodeValidationResult struct {
	NodeID        string                `json:"nodeId"`
	NodeType      OperationType         `json:"nodeType"`
	Severity      Severity              `json:"severity"`
	Issues        []NodeValidationIssue `json:"issues"`
	CreditCost    float64               `json:"creditCost"`
	AutoFixRecipe []OperationType       `json:"autoFixRecipe"`
}

// FlowValidationResult is the sole output artifact of a flow analysis. Each
// call produces a fresh result; nothing is merged with earlier passes.
type FlowValidationResult struct {
	Severity        Severity                        `json:"severity"`
	NodeResults     map[string]NodeValidationResult `json:"nodeResults"`
	TotalCreditCost float64                         `json:"totalCreditCost"`
	AnalyzedAt      time.Time                       `json:"analyzedAt"`
}

// AttachmentResult answers "where should a new block of this type attach,
// and what is still missing there". AttachToNodeID is empty when no
// attachment is needed or the flow has no nodes.
type AttachmentResult struct {
	AttachToNodeID     string          `json:"attachToNodeId,omitempty"`
	SatisfiedResources []ResourceKind  `json:"satisfiedResources"`
	MissingResources   []ResourceKind  `json:"missingResources"`
	RemainingRecipe    []OperationType `json:"remainingRecipe"`
	Score              int             `json:"score"`
}

// PlannedBlock is a recipe step with a canvas position assigned, ready to be
// materialized into a node by insertion logic.
type PlannedBlock struct {
	Type     OperationType `json:"type"`
	Position Position      `json:"position"`
}
