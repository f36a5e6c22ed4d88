// Package flowjson decodes and encodes flow snapshots. Decoding includes
// the structural pre-pass the analysis core deliberately does not perform:
// duplicate node IDs and connections naming missing nodes are rejected here,
// so the core can stay tolerant of whatever reaches it.
package flowjson

import (
	json "github.com/goccy/go-json"

	"github.com/accuflow/accuflow/internal/domain"
)

// Parse decodes a flow snapshot and verifies structural well-formedness.
func Parse(data []byte) (*domain.Flow, error) {
	var flow domain.Flow
	if err := json.Unmarshal(data, &flow); err != nil {
		return nil, domain.NewFlowError("parse", "snapshot", err)
	}

	if err := CheckStructure(&flow); err != nil {
		return nil, err
	}

	return &flow, nil
}

// CheckStructure verifies node ID uniqueness and that every connection
// endpoint names an existing node.
func CheckStructure(flow *domain.Flow) error {
	seen := make(map[string]struct{}, len(flow.Nodes))
	for _, node := range flow.Nodes {
		if _, dup := seen[node.ID]; dup {
			return domain.NewFlowError("check", node.ID, domain.ErrDuplicateNodeID)
		}
		seen[node.ID] = struct{}{}
	}

	for _, conn := range flow.Connections {
		if _, ok := seen[conn.SourceNodeID]; !ok {
			return domain.NewFlowError("check", conn.SourceNodeID, domain.ErrDanglingEdge)
		}
		if _, ok := seen[conn.TargetNodeID]; !ok {
			return domain.NewFlowError("check", conn.TargetNodeID, domain.ErrDanglingEdge)
		}
	}

	return nil
}

// Marshal encodes a flow snapshot.
func Marshal(flow *domain.Flow) ([]byte, error) {
	data, err := json.Marshal(flow)
	if err != nil {
		return nil, domain.NewFlowError("marshal", "snapshot", err)
	}
	return data, nil
}

// MarshalResult encodes a validation result for the editor side.
func MarshalResult(result *domain.FlowValidationResult) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, domain.NewFlowError("marshal", "result", err)
	}
	return data, nil
}
