package domain

// Position is the canvas coordinate of a block. The analysis core only reads
// Y, as a proxy for how far down the chain a node sits.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single operation block placed on the canvas. Config is opaque to
// the analysis core; it belongs to the editor and the executor.
type Node struct {
	ID       string                 `json:"id"`
	Type     OperationType          `json:"type"`
	Position Position               `json:"position"`
	Config   map[string]interface{} `json:"config,omitempty"`
}

// Connection is a directed edge between two blocks. Prerequisite analysis
// only follows SourceNodeID/TargetNodeID; the port IDs exist for the canvas.
type Connection struct {
	SourceNodeID string `json:"sourceNodeId"`
	SourcePortID string `json:"sourcePortId,omitempty"`
	TargetNodeID string `json:"targetNodeId"`
	TargetPortID string `json:"targetPortId,omitempty"`
}

// Flow is a snapshot of the editor graph. The analysis core treats it as
// read-only; it is never mutated by any function in this module.
type Flow struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// NodeTypes returns a lookup from node ID to operation type.
func (f *Flow) NodeTypes() map[string]OperationType {
	types := make(map[string]OperationType, len(f.Nodes))
	for _, node := range f.Nodes {
		types[node.ID] = node.Type
	}
	return types
}

// NodeByID returns the node with the given ID, or nil.
func (f *Flow) NodeByID(id string) *Node {
	for i := range f.Nodes {
		if f.Nodes[i].ID == id {
			return &f.Nodes[i]
		}
	}
	return nil
}
