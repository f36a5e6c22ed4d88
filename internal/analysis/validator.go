package analysis

import (
	"strings"

	"github.com/accuflow/accuflow/internal/domain"
)

// validateNode checks one node's requirements against the resources its
// ancestors produce. Nodes of an unregistered type are reported as valid
// with zero cost; flagging them would punish forward compatibility.
func (a *Analyzer) validateNode(node *domain.Node, ancestors map[string]struct{}, types map[string]domain.OperationType) domain.NodeValidationResult {
	result := domain.NodeValidationResult{
		NodeID:        node.ID,
		NodeType:      node.Type,
		Severity:      domain.SeverityValid,
		Issues:        []domain.NodeValidationIssue{},
		AutoFixRecipe: []domain.OperationType{},
	}

	rule, ok := a.registry.RuleFor(node.Type)
	if !ok {
		return result
	}

	available := a.collectProduced(ancestors, types)

	for _, req := range rule.Requires {
		if _, satisfied := available[req.Resource]; satisfied {
			continue
		}

		result.Issues = append(result.Issues, domain.NodeValidationIssue{
			Requirement:     req,
			Message:         "Missing " + req.Label,
			Remediation:     "Add a " + joinTypes(req.SatisfiedBy, " or ") + " block upstream",
			SuggestedBlocks: req.SatisfiedBy,
		})
		result.Severity = result.Severity.Merge(req.Severity)
	}

	result.AutoFixRecipe = a.minimalRecipe(rule.DefaultRecipe, available)
	result.CreditCost = rule.CreditCost

	return result
}

func joinTypes(types []domain.OperationType, sep string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, sep)
}
