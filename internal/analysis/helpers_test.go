package analysis

import (
	"github.com/accuflow/accuflow/internal/domain"
)

func node(id string, opType domain.OperationType, y float64) domain.Node {
	return domain.Node{
		ID:       id,
		Type:     opType,
		Position: domain.Position{X: 0, Y: y},
	}
}

func edge(source, target string) domain.Connection {
	return domain.Connection{
		SourceNodeID: source,
		TargetNodeID: target,
	}
}

func flowOf(nodes []domain.Node, connections ...domain.Connection) *domain.Flow {
	return &domain.Flow{
		Nodes:       nodes,
		Connections: connections,
	}
}

// chainFlow builds keys → faucet → wait, the usual bootstrap prefix.
func chainFlow() *domain.Flow {
	return flowOf(
		[]domain.Node{
			node("keys", domain.OpGenerateKeys, 0),
			node("faucet", domain.OpFaucet, 150),
			node("wait", domain.OpWaitForBalance, 300),
		},
		edge("keys", "faucet"),
		edge("faucet", "wait"),
	)
}

func resourceSet(kinds ...domain.ResourceKind) map[domain.ResourceKind]struct{} {
	set := make(map[domain.ResourceKind]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return set
}
