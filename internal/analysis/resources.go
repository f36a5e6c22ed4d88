package analysis

import (
	"github.com/accuflow/accuflow/internal/domain"
)

// collectProduced unions the produced resource kinds of every node in the ID
// set. Nodes whose type has no rule are skipped silently, so unregistered
// block types appearing in a flow never break analysis.
func (a *Analyzer) collectProduced(nodeIDs map[string]struct{}, types map[string]domain.OperationType) map[domain.ResourceKind]struct{} {
	produced := make(map[domain.ResourceKind]struct{})

	for id := range nodeIDs {
		opType, ok := types[id]
		if !ok {
			continue
		}

		rule, ok := a.registry.RuleFor(opType)
		if !ok {
			continue
		}

		for _, resource := range rule.Produces {
			produced[resource] = struct{}{}
		}
	}

	return produced
}
