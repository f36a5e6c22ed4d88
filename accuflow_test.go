package accuflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_EndToEnd(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	snapshot := []byte(`{
		"nodes": [
			{"id": "keys", "type": "generate-keys", "position": {"x": 100, "y": 0}},
			{"id": "faucet", "type": "faucet", "position": {"x": 100, "y": 150}},
			{"id": "wait", "type": "wait-for-balance", "position": {"x": 100, "y": 300}}
		],
		"connections": [
			{"sourceNodeId": "keys", "targetNodeId": "faucet"},
			{"sourceNodeId": "faucet", "targetNodeId": "wait"}
		]
	}`)

	flow, err := ParseFlow(snapshot)
	require.NoError(t, err)

	result := engine.AnalyzeFlow(flow)
	assert.Equal(t, SeverityValid, result.Severity)
	assert.Len(t, result.NodeResults, 3)

	attachment := engine.FindBestAttachmentNode(OpAddCredits, flow)
	assert.Equal(t, "wait", attachment.AttachToNodeID)
	assert.Empty(t, attachment.MissingResources)

	data, err := MarshalResult(&result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"severity":"valid"`)
}

func TestEngine_RuleOverrides(t *testing.T) {
	engine, err := New(WithRuleOverrides(map[OperationType]Rule{
		OpCreateIdentity: {CreditCost: 750},
	}))
	require.NoError(t, err)

	flow := &Flow{Nodes: []Node{{ID: "adi", Type: OpCreateIdentity}}}

	result := engine.AnalyzeFlow(flow)
	assert.Equal(t, 750.0, result.TotalCreditCost)
}

func TestEngine_PlanInsertion(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	plan := engine.PlanInsertion(OpCreateIdentity, &Flow{}, Position{X: 200, Y: 900})

	require.Len(t, plan.Nodes, 6)
	assert.Equal(t, OpCreateIdentity, plan.Nodes[5].Type)
}

func TestPackageLevelConveniences(t *testing.T) {
	flow := &Flow{Nodes: []Node{{ID: "keys", Type: OpGenerateKeys}}}

	result := AnalyzeFlow(flow)
	assert.Equal(t, SeverityValid, result.Severity)

	recipe := GetPrerequisiteRecipe(OpAddCredits, flow)
	assert.Equal(t, []OperationType{OpFaucet, OpWaitForBalance}, recipe)

	attachment := FindBestAttachmentNode(OpAddCredits, flow)
	assert.Equal(t, "keys", attachment.AttachToNodeID)

	blocks := ComputePrerequisitePositions(recipe, Position{X: 0, Y: 300})
	require.Len(t, blocks, 2)
	assert.Equal(t, 0.0, blocks[0].Position.Y)
}
