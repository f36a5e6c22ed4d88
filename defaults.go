package accuflow

import (
	"sync"
)

var defaultEngine = sync.OnceValue(func() *Engine {
	engine, err := New()
	if err != nil {
		// New only fails on bad overrides; there are none here.
		panic(err)
	}
	return engine
})

// AnalyzeFlow runs Engine.AnalyzeFlow on a shared default engine.
func AnalyzeFlow(flow *Flow) FlowValidationResult {
	return defaultEngine().AnalyzeFlow(flow)
}

// FindBestAttachmentNode runs Engine.FindBestAttachmentNode on a shared
// default engine.
func FindBestAttachmentNode(target OperationType, flow *Flow) AttachmentResult {
	return defaultEngine().FindBestAttachmentNode(target, flow)
}

// GetPrerequisiteRecipe runs Engine.GetPrerequisiteRecipe on a shared
// default engine.
func GetPrerequisiteRecipe(target OperationType, flow *Flow) []OperationType {
	return defaultEngine().GetPrerequisiteRecipe(target, flow)
}

// ComputePrerequisitePositions runs Engine.ComputePrerequisitePositions on a
// shared default engine.
func ComputePrerequisitePositions(recipe []OperationType, target Position) []PlannedBlock {
	return defaultEngine().ComputePrerequisitePositions(recipe, target)
}
