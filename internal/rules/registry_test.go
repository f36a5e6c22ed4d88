package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accuflow/accuflow/internal/domain"
)

func TestDefaultTableSelfConsistency(t *testing.T) {
	r := Default()

	for _, opType := range r.Types() {
		rule, ok := r.RuleFor(opType)
		require.True(t, ok)

		for _, req := range rule.Requires {
			require.NotEmpty(t, req.SatisfiedBy, "%s: requirement %s has no producers", opType, req.Resource)
			require.NotEmpty(t, req.Label, "%s: requirement %s has no label", opType, req.Resource)

			// Every listed producer must actually produce the resource.
			for _, producer := range req.SatisfiedBy {
				producerRule, ok := r.RuleFor(producer)
				require.True(t, ok, "%s: producer %s is not registered", opType, producer)
				assert.Contains(t, producerRule.Produces, req.Resource,
					"%s: %s does not produce %s", opType, producer, req.Resource)
			}
		}

		for _, step := range rule.DefaultRecipe {
			assert.True(t, r.Has(step), "%s: recipe step %s is not registered", opType, step)
		}

		assert.GreaterOrEqual(t, rule.CreditCost, 0.0)
	}
}

func TestRegistry_UnknownType(t *testing.T) {
	r := Default()

	_, ok := r.RuleFor("custom-op")
	assert.False(t, ok)
	assert.False(t, r.Has("custom-op"))
}

func TestRegistry_WithOverrides(t *testing.T) {
	r, err := New(WithOverrides(map[domain.OperationType]domain.Rule{
		domain.OpCreateIdentity: {CreditCost: 750},
	}))
	require.NoError(t, err)

	rule, ok := r.RuleFor(domain.OpCreateIdentity)
	require.True(t, ok)

	// Overridden field replaced, everything else kept from the defaults.
	assert.Equal(t, 750.0, rule.CreditCost)
	assert.Equal(t, []domain.ResourceKind{domain.ResourceIdentity}, rule.Produces)
	assert.Len(t, rule.Requires, 2)
	assert.Len(t, rule.DefaultRecipe, 5)
}

func TestRegistry_WithOverridesNewType(t *testing.T) {
	custom := domain.Rule{
		Produces:   []domain.ResourceKind{"custom-resource"},
		CreditCost: 1,
	}

	r, err := New(WithOverrides(map[domain.OperationType]domain.Rule{
		"custom-op": custom,
	}))
	require.NoError(t, err)

	rule, ok := r.RuleFor("custom-op")
	require.True(t, ok)
	assert.Equal(t, custom, rule)
}

func TestRegistry_WithRule(t *testing.T) {
	replacement := domain.Rule{CreditCost: 9}

	r, err := New(WithRule(domain.OpFaucet, replacement))
	require.NoError(t, err)

	rule, ok := r.RuleFor(domain.OpFaucet)
	require.True(t, ok)
	assert.Equal(t, replacement, rule)
}

func TestRegistry_TypesStableOrder(t *testing.T) {
	r := Default()

	first := r.Types()
	second := r.Types()

	assert.Equal(t, first, second)
	assert.Len(t, first, 10)
}
