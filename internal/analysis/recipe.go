package analysis

import (
	"github.com/accuflow/accuflow/internal/domain"
)

// minimalRecipe prunes a default prerequisite chain against resources that
// are already available, by simulating the chain in order.
//
// A step is retained when it produces something the simulation has not seen
// yet, or when it re-produces a resource a prior retained step introduced.
// The second clause keeps confirmation steps alive: in a chain like
// [faucet, wait-for-balance] both steps produce the balance resource, and
// once the faucet is retained the wait must be too — it is what guards the
// rest of the plan against the faucet's asynchronous settlement. Steps with
// no rule entry are skipped and never retained.
func (a *Analyzer) minimalRecipe(defaultRecipe []domain.OperationType, available map[domain.ResourceKind]struct{}) []domain.OperationType {
	result := make([]domain.OperationType, 0, len(defaultRecipe))
	if len(defaultRecipe) == 0 {
		return result
	}

	simulated := make(map[domain.ResourceKind]struct{}, len(available))
	for resource := range available {
		simulated[resource] = struct{}{}
	}
	addedByRecipe := make(map[domain.ResourceKind]struct{})

	for _, step := range defaultRecipe {
		rule, ok := a.registry.RuleFor(step)
		if !ok {
			continue
		}

		producesNeeded := false
		confirmsRecipeOutput := false
		for _, resource := range rule.Produces {
			if _, have := simulated[resource]; !have {
				producesNeeded = true
			}
			if _, added := addedByRecipe[resource]; added {
				confirmsRecipeOutput = true
			}
		}

		if producesNeeded || confirmsRecipeOutput {
			result = append(result, step)
			for _, resource := range rule.Produces {
				if _, had := available[resource]; !had {
					addedByRecipe[resource] = struct{}{}
				}
			}
		}

		for _, resource := range rule.Produces {
			simulated[resource] = struct{}{}
		}
	}

	return result
}
