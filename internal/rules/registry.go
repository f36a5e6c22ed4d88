package rules

import (
	"sort"

	"dario.cat/mergo"

	"github.com/accuflow/accuflow/internal/domain"
)

// Registry is a read-only view over the rule table. The analysis core never
// mutates it; overrides are applied once at construction.
type Registry struct {
	table map[domain.OperationType]domain.Rule
}

type Option func(*Registry) error

// WithOverrides merges partial rules over the built-in defaults, keyed by
// operation type. Non-zero fields of an override replace the default field
// wholesale; zero fields keep the default. The usual caller is network
// configuration adjusting credit costs to the current oracle price.
func WithOverrides(overrides map[domain.OperationType]domain.Rule) Option {
	return func(r *Registry) error {
		for opType, override := range overrides {
			merged := override
			base, ok := r.table[opType]
			if !ok {
				r.table[opType] = override
				continue
			}
			if err := mergo.Merge(&merged, base); err != nil {
				return domain.NewFlowError("rules", string(opType), err)
			}
			r.table[opType] = merged
		}
		return nil
	}
}

// WithRule registers or replaces a single rule outright, no merging.
func WithRule(opType domain.OperationType, rule domain.Rule) Option {
	return func(r *Registry) error {
		r.table[opType] = rule
		return nil
	}
}

// New builds a registry from the built-in table plus any options.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{table: defaultTable()}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns a registry over the unmodified built-in table.
func Default() *Registry {
	return &Registry{table: defaultTable()}
}

// RuleFor looks up the rule for an operation type. ok is false for types the
// table does not know; callers are expected to treat those as always-valid.
func (r *Registry) RuleFor(opType domain.OperationType) (domain.Rule, bool) {
	rule, ok := r.table[opType]
	return rule, ok
}

// Has reports whether the registry knows the operation type.
func (r *Registry) Has(opType domain.OperationType) bool {
	_, ok := r.table[opType]
	return ok
}

// Types returns all registered operation types in stable order.
func (r *Registry) Types() []domain.OperationType {
	types := make([]domain.OperationType, 0, len(r.table))
	for opType := range r.table {
		types = append(types, opType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
