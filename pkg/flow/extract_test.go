package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/studiomap/pkg/domain"
	"github.com/aretw0/studiomap/pkg/flow"
)

// sampleDefinition is a voice flow with a split, a failure branch, an
// unreachable message branch, and a loop back to the entry state.
func sampleDefinition() *flow.Definition {
	return &flow.Definition{
		Description:  "support line",
		InitialState: "Trigger",
		States: []flow.StateRecord{
			{
				Name: "Trigger",
				Type: "trigger",
				Transitions: []flow.TransitionRecord{
					{Event: "incomingCall", Next: "greet"},
					{Event: "incomingMessage", Next: "reply_sms"},
				},
			},
			{
				Name: "greet",
				Type: "say-play",
				Transitions: []flow.TransitionRecord{
					{Event: "audioComplete", Next: "gather_choice"},
				},
			},
			{
				Name: "gather_choice",
				Type: "gather-input-on-call",
				Transitions: []flow.TransitionRecord{
					{Event: "keypress", Next: "route_choice"},
					{Event: "timeout", Next: "greet"}, // loop back
				},
			},
			{
				Name: "route_choice",
				Type: "split-based-on",
				Transitions: []flow.TransitionRecord{
					{
						Event: "match",
						Next:  "connect_agent",
						Conditions: []flow.Condition{
							{FriendlyName: "Talk to agent", Type: "equal_to", Value: "1"},
						},
					},
					{Event: "noMatch", Next: "greet"},
				},
			},
			{
				Name: "connect_agent",
				Type: "connect-call-to",
				Transitions: []flow.TransitionRecord{
					{Event: "callCompleted"},
					{Event: "failed", Next: "escalate"},
				},
			},
			{
				Name: "escalate",
				Type: "run-subflow",
				Properties: map[string]any{
					"flow_sid":      "FW0123456789abcdef0123456789abcdef",
					"flow_revision": "LatestPublished",
				},
			},
			{
				Name: "reply_sms",
				Type: "send-message",
			},
		},
	}
}

func TestExtract_ReachabilityClosure(t *testing.T) {
	g, err := flow.Extract(sampleDefinition(), flow.TriggerIncomingCall)
	require.NoError(t, err)

	// Only the call branch is present; reply_sms and Trigger are excluded.
	var ids []string
	for _, s := range g.States() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"greet", "gather_choice", "route_choice", "connect_agent", "escalate"}, ids)

	// Every transition endpoint resolves within the graph.
	for _, tr := range g.Transitions() {
		assert.True(t, g.Has(tr.From), "from %q must resolve", tr.From)
		assert.True(t, g.Has(tr.To), "to %q must resolve", tr.To)
	}
}

func TestExtract_BFSDiscoveryOrder(t *testing.T) {
	g, err := flow.Extract(sampleDefinition(), flow.TriggerIncomingCall)
	require.NoError(t, err)

	// BFS from greet: gather_choice before route_choice before connect_agent.
	states := g.States()
	require.Len(t, states, 5)
	assert.Equal(t, "greet", states[0].ID)
	assert.Equal(t, "gather_choice", states[1].ID)
	assert.Equal(t, "route_choice", states[2].ID)
}

func TestExtract_CyclesAreSkipped(t *testing.T) {
	g, err := flow.Extract(sampleDefinition(), flow.TriggerIncomingCall)
	require.NoError(t, err)

	// greet appears once even though two transitions loop back to it.
	seen := 0
	for _, s := range g.States() {
		if s.ID == "greet" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)

	// The loop-back edges themselves are kept.
	var loops int
	for _, tr := range g.Transitions() {
		if tr.To == "greet" {
			loops++
		}
	}
	assert.Equal(t, 2, loops)
}

func TestExtract_OutcomeClassification(t *testing.T) {
	g, err := flow.Extract(sampleDefinition(), flow.TriggerIncomingCall)
	require.NoError(t, err)

	outcomes := make(map[string]domain.Outcome)
	labels := make(map[string]string)
	for _, tr := range g.Transitions() {
		outcomes[tr.From+"/"+tr.ConditionKey] = tr.Outcome
		labels[tr.From+"/"+tr.ConditionKey] = tr.Label
	}

	// Matched condition branch is success, labeled with the friendly name.
	assert.Equal(t, domain.OutcomeSuccess, outcomes["route_choice/Talk to agent"])
	assert.Equal(t, "Talk to agent", labels["route_choice/Talk to agent"])

	// failed and timeout are failures.
	assert.Equal(t, domain.OutcomeFailure, outcomes["connect_agent/failed"])
	assert.Equal(t, domain.OutcomeFailure, outcomes["gather_choice/timeout"])

	// Unknown events default to neutral, never an error.
	assert.Equal(t, domain.OutcomeNeutral, outcomes["greet/audioComplete"])
	assert.Equal(t, domain.OutcomeNeutral, outcomes["route_choice/noMatch"])
}

func TestExtract_UnknownTrigger(t *testing.T) {
	_, err := flow.Extract(sampleDefinition(), flow.TriggerSubflow)
	assert.ErrorIs(t, err, flow.ErrUnknownTrigger)
}

func TestExtract_SubflowProperties(t *testing.T) {
	g, err := flow.Extract(sampleDefinition(), flow.TriggerIncomingCall)
	require.NoError(t, err)

	s, ok := g.State("escalate")
	require.True(t, ok)
	assert.Equal(t, domain.KindRunSubflow, s.Kind)
	assert.Equal(t, "FW0123456789abcdef0123456789abcdef", s.SubflowSID)
}

func TestExtract_MessageTrigger(t *testing.T) {
	g, err := flow.Extract(sampleDefinition(), flow.TriggerIncomingMessage)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	s := g.States()[0]
	assert.Equal(t, "reply_sms", s.ID)
	assert.Equal(t, domain.KindSendMessage, s.Kind)
	assert.Empty(t, g.Transitions())
}

func TestParseTriggerType(t *testing.T) {
	for in, want := range map[string]flow.TriggerType{
		"incoming-message": flow.TriggerIncomingMessage,
		"incoming-call":    flow.TriggerIncomingCall,
		"rest-api":         flow.TriggerRESTAPI,
		"subflow":          flow.TriggerSubflow,
		"incomingParent":   flow.TriggerSubflow,
	} {
		got, err := flow.ParseTriggerType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := flow.ParseTriggerType("webhook")
	assert.Error(t, err)
}
