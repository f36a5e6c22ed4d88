package domain

// Severity classifies how serious an unmet requirement is. Precedence when
// merging is error > warning > valid.
type Severity string

const (
	SeverityValid   Severity = "valid"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

var severityRank = map[Severity]int{
	SeverityValid:   0,
	SeverityWarning: 1,
	SeverityError:   2,
}

// Merge returns the more severe of s and other.
func (s Severity) Merge(other Severity) Severity {
	if severityRank[other] > severityRank[s] {
		return other
	}
	return s
}

// Requirement is one resource an operation needs before it can execute,
// together with how to report and how to fix a miss.
type Requirement struct {
	Resource    ResourceKind    `json:"resource"`
	Label       string          `json:"label"`
	Severity    Severity        `json:"severity"`
	SatisfiedBy []OperationType `json:"satisfiedBy"`
}

// Rule describes the prerequisite contract of one operation type.
type Rule struct {
	Requires []Requirement `json:"requires,omitempty"`

	// Produces lists the resource kinds available to downstream blocks once
	// this operation has executed.
	Produces []ResourceKind `json:"produces,omitempty"`

	// DefaultRecipe is the canonical prerequisite chain for this operation,
	// earliest first. The minimal-recipe computation prunes it against what
	// is already available.
	DefaultRecipe []OperationType `json:"defaultRecipe,omitempty"`

	// CreditCost is charged when the operation executes, whether or not its
	// requirements are met at analysis time.
	CreditCost float64 `json:"creditCost,omitempty"`
}
