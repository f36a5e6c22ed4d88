// Package accuflow provides the prerequisite analysis engine behind a visual
// flow builder for Accumulate operation sequences.
//
// A flow is a directed graph of operation blocks. Each operation type has a
// rule describing the resources it requires (a funded lite account,
// sufficient credits, an identity) and the resources it produces once it has
// run. The engine answers the questions the editor keeps asking:
//   - Is every block's prerequisite chain satisfied by its upstream blocks?
//   - What is the cheapest ordered set of blocks that would fill a gap?
//   - Where should a newly requested block attach to an existing flow?
//
// Basic usage:
//
//	engine, _ := accuflow.New()
//	result := engine.AnalyzeFlow(flow)
//	if result.Severity == accuflow.SeverityError {
//	    for _, nr := range result.NodeResults {
//	        // surface nr.Issues in the editor
//	    }
//	}
//
// All analysis is synchronous and pure: the engine never mutates the flow,
// caches nothing between calls, and recomputes from scratch each time.
package accuflow

import (
	"log/slog"
	"time"

	"github.com/accuflow/accuflow/internal/adapters/watcher"
	"github.com/accuflow/accuflow/internal/analysis"
	"github.com/accuflow/accuflow/internal/domain"
	"github.com/accuflow/accuflow/internal/flowjson"
	"github.com/accuflow/accuflow/internal/insertion"
	"github.com/accuflow/accuflow/internal/rules"
)

// Flow is a read-only snapshot of the editor graph.
type Flow = domain.Flow

// Node is one operation block on the canvas.
type Node = domain.Node

// Connection is a directed edge between two blocks.
type Connection = domain.Connection

// Position is a canvas coordinate.
type Position = domain.Position

// OperationType identifies a kind of block; the set is closed.
type OperationType = domain.OperationType

// ResourceKind is an abstract precondition/postcondition tag.
type ResourceKind = domain.ResourceKind

// Severity classifies validation outcomes; error > warning > valid.
type Severity = domain.Severity

// Rule is the prerequisite contract of one operation type.
type Rule = domain.Rule

// Requirement is one resource an operation needs before it can execute.
type Requirement = domain.Requirement

// NodeValidationResult is the per-node outcome of an analysis pass.
type NodeValidationResult = domain.NodeValidationResult

// FlowValidationResult is the output artifact of AnalyzeFlow.
type FlowValidationResult = domain.FlowValidationResult

// AttachmentResult reports the best attachment point for a new block.
type AttachmentResult = domain.AttachmentResult

// PlannedBlock is a recipe step with a canvas position assigned.
type PlannedBlock = domain.PlannedBlock

// InsertionPlan is a ready-to-apply set of nodes and connections.
type InsertionPlan = insertion.Plan

// Watcher debounces editor changes and re-runs analysis after they settle.
type Watcher = watcher.Watcher

const (
	SeverityValid   = domain.SeverityValid
	SeverityWarning = domain.SeverityWarning
	SeverityError   = domain.SeverityError
)

const (
	OpGenerateKeys       = domain.OpGenerateKeys
	OpFaucet             = domain.OpFaucet
	OpWaitForBalance     = domain.OpWaitForBalance
	OpAddCredits         = domain.OpAddCredits
	OpWaitForCredits     = domain.OpWaitForCredits
	OpCreateIdentity     = domain.OpCreateIdentity
	OpCreateTokenAccount = domain.OpCreateTokenAccount
	OpSendTokens         = domain.OpSendTokens
	OpCreateDataAccount  = domain.OpCreateDataAccount
	OpWriteData          = domain.OpWriteData
)

// Engine bundles the analyzer and the insertion planner over one rule
// registry. It is safe for concurrent use; all methods are pure.
type Engine struct {
	analyzer *analysis.Analyzer
	planner  *insertion.Planner
	logger   *slog.Logger
}

type Option func(*config)

type config struct {
	logger    *slog.Logger
	overrides map[OperationType]Rule
}

// WithLogger sets the logger used for debug-level analysis traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRuleOverrides merges partial rules over the built-in table, e.g. to
// adjust credit costs to the current network oracle price.
func WithRuleOverrides(overrides map[OperationType]Rule) Option {
	return func(c *config) { c.overrides = overrides }
}

// New builds an engine over the built-in rule table plus any options.
func New(opts ...Option) (*Engine, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	var registryOpts []rules.Option
	if cfg.overrides != nil {
		registryOpts = append(registryOpts, rules.WithOverrides(cfg.overrides))
	}
	registry, err := rules.New(registryOpts...)
	if err != nil {
		return nil, err
	}

	analyzer := analysis.New(registry, cfg.logger)

	return &Engine{
		analyzer: analyzer,
		planner:  insertion.NewPlanner(analyzer, cfg.logger),
		logger:   cfg.logger,
	}, nil
}

// AnalyzeFlow validates every node against its ancestry and aggregates
// severity and total credit cost.
func (e *Engine) AnalyzeFlow(flow *Flow) FlowValidationResult {
	return e.analyzer.AnalyzeFlow(flow)
}

// FindBestAttachmentNode picks the terminal node whose ancestry best
// satisfies the target type's requirements.
func (e *Engine) FindBestAttachmentNode(target OperationType, flow *Flow) AttachmentResult {
	return e.analyzer.FindBestAttachmentNode(target, flow)
}

// GetPrerequisiteRecipe computes what would still need to be added anywhere
// in the flow before a block of the target type. Looser than per-node
// validation: every node's output counts, regardless of ancestry.
func (e *Engine) GetPrerequisiteRecipe(target OperationType, flow *Flow) []OperationType {
	return e.analyzer.PrerequisiteRecipe(target, flow)
}

// ComputePrerequisitePositions stacks recipe steps vertically above the
// target position at a fixed gap.
func (e *Engine) ComputePrerequisitePositions(recipe []OperationType, target Position) []PlannedBlock {
	return analysis.PrerequisitePositions(recipe, target)
}

// PlanInsertion materializes the missing prerequisite chain for a new block
// as ready-to-insert nodes and connections.
func (e *Engine) PlanInsertion(target OperationType, flow *Flow, position Position) *InsertionPlan {
	return e.planner.Plan(target, flow, position)
}

// NewWatcher wraps the engine in a debounced re-analysis loop. A quiet
// duration of zero selects the default.
func (e *Engine) NewWatcher(quiet time.Duration) *Watcher {
	return watcher.New(e.analyzer, quiet, e.logger)
}

// ParseFlow decodes a flow snapshot and rejects structural problems
// (duplicate node IDs, connections naming missing nodes) before analysis.
func ParseFlow(data []byte) (*Flow, error) {
	return flowjson.Parse(data)
}

// MarshalResult encodes a validation result for the editor side.
func MarshalResult(result *FlowValidationResult) ([]byte, error) {
	return flowjson.MarshalResult(result)
}
