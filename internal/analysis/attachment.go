package analysis

import (
	"github.com/accuflow/accuflow/internal/domain"
)

// FindBestAttachmentNode picks the terminal node whose ancestry satisfies
// the most of the target type's requirements, and reports what remains
// missing there together with the minimal recipe to fill the gap.
//
// Candidates are nodes with no outgoing connection. A fully cyclic flow has
// none, in which case every node becomes a candidate rather than the search
// coming back empty. Ties on a nonzero score go to the candidate with the
// greater canvas Y, treating "lower on the canvas" as "further down the
// chain" the way the studio lays flows out top to bottom.
func (a *Analyzer) FindBestAttachmentNode(target domain.OperationType, flow *domain.Flow) domain.AttachmentResult {
	result := domain.AttachmentResult{
		SatisfiedResources: []domain.ResourceKind{},
		MissingResources:   []domain.ResourceKind{},
		RemainingRecipe:    []domain.OperationType{},
	}

	rule, ok := a.registry.RuleFor(target)
	if !ok || len(rule.Requires) == 0 {
		return result
	}

	if len(flow.Nodes) == 0 {
		for _, req := range rule.Requires {
			result.MissingResources = append(result.MissingResources, req.Resource)
		}
		result.RemainingRecipe = a.minimalRecipe(rule.DefaultRecipe, nil)
		return result
	}

	hasOutgoing := make(map[string]bool, len(flow.Connections))
	for _, conn := range flow.Connections {
		hasOutgoing[conn.SourceNodeID] = true
	}

	candidates := make([]*domain.Node, 0, len(flow.Nodes))
	for i := range flow.Nodes {
		if !hasOutgoing[flow.Nodes[i].ID] {
			candidates = append(candidates, &flow.Nodes[i])
		}
	}
	if len(candidates) == 0 {
		for i := range flow.Nodes {
			candidates = append(candidates, &flow.Nodes[i])
		}
	}

	ancestry := BuildAncestryMap(flow)
	types := flow.NodeTypes()

	var best *domain.Node
	var bestResources map[domain.ResourceKind]struct{}
	bestScore := -1

	for _, candidate := range candidates {
		reachable := make(map[string]struct{}, len(ancestry[candidate.ID])+1)
		for id := range ancestry[candidate.ID] {
			reachable[id] = struct{}{}
		}
		reachable[candidate.ID] = struct{}{}

		resources := a.collectProduced(reachable, types)

		score := 0
		for _, req := range rule.Requires {
			if _, ok := resources[req.Resource]; ok {
				score++
			}
		}

		switch {
		case score > bestScore:
			best = candidate
			bestScore = score
			bestResources = resources
		case score == bestScore && score > 0 && candidate.Position.Y > best.Position.Y:
			best = candidate
			bestResources = resources
		}
	}

	result.AttachToNodeID = best.ID
	result.Score = bestScore

	for _, req := range rule.Requires {
		if _, ok := bestResources[req.Resource]; ok {
			result.SatisfiedResources = append(result.SatisfiedResources, req.Resource)
		} else {
			result.MissingResources = append(result.MissingResources, req.Resource)
		}
	}

	result.RemainingRecipe = a.minimalRecipe(rule.DefaultRecipe, bestResources)

	return result
}
