package analysis

import (
	"github.com/accuflow/accuflow/internal/domain"
)

// BuildAncestryMap computes, for every node in the flow, the set of node IDs
// reachable by following connections backward. A node is never its own
// ancestor, even when a cycle would otherwise reach it. Connections naming a
// node ID that does not exist in the flow contribute no ancestors.
func BuildAncestryMap(flow *domain.Flow) map[string]map[string]struct{} {
	known := make(map[string]struct{}, len(flow.Nodes))
	for _, node := range flow.Nodes {
		known[node.ID] = struct{}{}
	}

	reverse := make(map[string][]string, len(flow.Connections))
	for _, conn := range flow.Connections {
		if _, ok := known[conn.SourceNodeID]; !ok {
			continue
		}
		reverse[conn.TargetNodeID] = append(reverse[conn.TargetNodeID], conn.SourceNodeID)
	}

	ancestry := make(map[string]map[string]struct{}, len(flow.Nodes))

	for _, node := range flow.Nodes {
		ancestors := make(map[string]struct{})
		queue := append([]string(nil), reverse[node.ID]...)

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			if current == node.ID {
				continue
			}
			if _, seen := ancestors[current]; seen {
				continue
			}

			ancestors[current] = struct{}{}
			queue = append(queue, reverse[current]...)
		}

		ancestry[node.ID] = ancestors
	}

	return ancestry
}
