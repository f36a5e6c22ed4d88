package analysis

import (
	"github.com/accuflow/accuflow/internal/domain"
)

// prerequisiteGapY is the vertical spacing between auto-inserted blocks.
const prerequisiteGapY = 150

// PrerequisitePositions stacks recipe steps vertically above the target
// position, earliest step highest, at a fixed gap. Purely geometric; no
// resource logic is involved.
func PrerequisitePositions(recipe []domain.OperationType, target domain.Position) []domain.PlannedBlock {
	blocks := make([]domain.PlannedBlock, 0, len(recipe))

	for i, step := range recipe {
		blocks = append(blocks, domain.PlannedBlock{
			Type: step,
			Position: domain.Position{
				X: target.X,
				Y: target.Y - float64(len(recipe)-i)*prerequisiteGapY,
			},
		})
	}

	return blocks
}
