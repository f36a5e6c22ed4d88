// Package insertion turns analysis results into concrete editor mutations:
// given a block the user wants, it materializes the missing prerequisite
// chain as ready-to-insert nodes and connections.
package insertion

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/accuflow/accuflow/internal/analysis"
	"github.com/accuflow/accuflow/internal/domain"
)

// Plan is a set of nodes and connections the editor should add to the flow.
// Nodes are ordered prerequisites-first, ending with the requested block.
type Plan struct {
	Nodes       []domain.Node       `json:"nodes"`
	Connections []domain.Connection `json:"connections"`

	// AttachTo is the existing node the first planned node connects from;
	// empty when the plan starts a fresh chain.
	AttachTo string `json:"attachTo,omitempty"`
}

// Planner builds insertion plans from attachment analysis.
type Planner struct {
	analyzer *analysis.Analyzer
	logger   *slog.Logger
}

func NewPlanner(analyzer *analysis.Analyzer, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{
		analyzer: analyzer,
		logger:   logger.With("component", "insertion_planner"),
	}
}

// Plan places a block of the target type at the given position, preceded by
// whatever prerequisite steps the best attachment point still lacks. Every
// planned node gets a fresh ID; planned nodes are chained head to tail, and
// the head is connected from the attachment node when one exists.
func (p *Planner) Plan(target domain.OperationType, flow *domain.Flow, position domain.Position) *Plan {
	attachment := p.analyzer.FindBestAttachmentNode(target, flow)

	steps := append([]domain.OperationType{}, attachment.RemainingRecipe...)
	steps = append(steps, target)

	placed := analysis.PrerequisitePositions(attachment.RemainingRecipe, position)

	plan := &Plan{
		Nodes:       make([]domain.Node, 0, len(steps)),
		Connections: make([]domain.Connection, 0, len(steps)),
		AttachTo:    attachment.AttachToNodeID,
	}

	previous := attachment.AttachToNodeID
	for i, step := range steps {
		pos := position
		if i < len(placed) {
			pos = placed[i].Position
		}

		node := domain.Node{
			ID:       uuid.New().String(),
			Type:     step,
			Position: pos,
		}
		plan.Nodes = append(plan.Nodes, node)

		if previous != "" {
			plan.Connections = append(plan.Connections, domain.Connection{
				SourceNodeID: previous,
				TargetNodeID: node.ID,
			})
		}
		previous = node.ID
	}

	p.logger.Debug("insertion planned",
		"target", target,
		"attach_to", attachment.AttachToNodeID,
		"prerequisites", len(attachment.RemainingRecipe))

	return plan
}
