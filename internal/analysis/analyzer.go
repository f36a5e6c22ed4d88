// Package analysis implements prerequisite analysis over a flow snapshot:
// ancestry indexing, resource satisfaction, minimal prerequisite recipes,
// and attachment scoring for new blocks.
//
// Everything here is a pure function of its inputs. The flow is never
// mutated, nothing is cached between calls, and no call blocks. Malformed
// input (dangling connections, unknown operation types) degrades gracefully
// instead of failing; structural rejection is the snapshot codec's job.
package analysis

import (
	"log/slog"
	"time"

	"github.com/accuflow/accuflow/internal/domain"
	"github.com/accuflow/accuflow/internal/rules"
)

// Analyzer evaluates flows against a rule registry.
type Analyzer struct {
	registry *rules.Registry
	logger   *slog.Logger
}

func New(registry *rules.Registry, logger *slog.Logger) *Analyzer {
	if registry == nil {
		registry = rules.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		registry: registry,
		logger:   logger.With("component", "analyzer"),
	}
}

// AnalyzeFlow validates every node in the flow and aggregates the outcome.
// The returned result wholly replaces any earlier one; nothing is merged
// across calls. Total credit cost sums every node's cost, including nodes
// with unmet requirements, because cost reflects execution, not feasibility.
func (a *Analyzer) AnalyzeFlow(flow *domain.Flow) domain.FlowValidationResult {
	ancestry := BuildAncestryMap(flow)
	types := flow.NodeTypes()

	result := domain.FlowValidationResult{
		Severity:    domain.SeverityValid,
		NodeResults: make(map[string]domain.NodeValidationResult, len(flow.Nodes)),
	}

	for i := range flow.Nodes {
		node := &flow.Nodes[i]
		nodeResult := a.validateNode(node, ancestry[node.ID], types)

		result.NodeResults[node.ID] = nodeResult
		result.Severity = result.Severity.Merge(nodeResult.Severity)
		result.TotalCreditCost += nodeResult.CreditCost
	}

	result.AnalyzedAt = time.Now()

	a.logger.Debug("flow analyzed",
		"nodes", len(flow.Nodes),
		"severity", result.Severity,
		"total_credit_cost", result.TotalCreditCost)

	return result
}

// PrerequisiteRecipe answers "what would I still need to add anywhere in
// this flow before a block of the target type". It counts resources produced
// by every node regardless of ancestry, so it is deliberately looser than
// the per-node validation AnalyzeFlow performs.
func (a *Analyzer) PrerequisiteRecipe(target domain.OperationType, flow *domain.Flow) []domain.OperationType {
	rule, ok := a.registry.RuleFor(target)
	if !ok {
		return []domain.OperationType{}
	}

	all := make(map[string]struct{}, len(flow.Nodes))
	for _, node := range flow.Nodes {
		all[node.ID] = struct{}{}
	}

	available := a.collectProduced(all, flow.NodeTypes())
	return a.minimalRecipe(rule.DefaultRecipe, available)
}
