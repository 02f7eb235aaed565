package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/studiomap/internal/presentation/graph"
	"github.com/aretw0/studiomap/pkg/domain"
)

func newGraph(t *testing.T, states []domain.State, transitions []domain.Transition) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for _, s := range states {
		require.NoError(t, g.AddState(s))
	}
	for _, tr := range transitions {
		require.NoError(t, g.AddTransition(tr))
	}
	return g
}

func TestMermaid_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.State
		contains string
	}{
		{"Split Diamond", domain.State{ID: "route", Kind: domain.KindSplit}, `route{"route"}`},
		{"Trigger Stadium", domain.State{ID: "entry", Kind: domain.KindTrigger}, `entry(["entry"])`},
		{"Subflow Subroutine", domain.State{ID: "sub", Kind: domain.KindRunSubflow}, `sub[["sub"]]`},
		{"End Circle", domain.State{ID: "done", Kind: domain.KindEndFlow}, `done(("done"))`},
		{"Default Rounded", domain.State{ID: "say_hi", Kind: domain.KindSayPlay}, `say_hi("say_hi")`},
		{"Unknown Rounded", domain.State{ID: "misc", Kind: domain.KindDefault}, `misc("misc")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGraph(t, []domain.State{tt.state}, nil)
			got := graph.Mermaid(g)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestMermaid_FencedBlock(t *testing.T) {
	g := newGraph(t, []domain.State{{ID: "a"}}, nil)
	got := graph.Mermaid(g)
	assert.True(t, strings.HasPrefix(got, "```mermaid\nflowchart TD\n"))
	assert.True(t, strings.HasSuffix(got, "```"))
}

func TestMermaid_EmptyGraph(t *testing.T) {
	got := graph.Mermaid(domain.NewGraph())
	assert.Equal(t, "```mermaid\nflowchart TD\n```", got)
}

func TestMermaid_EdgeLabels(t *testing.T) {
	g := newGraph(t,
		[]domain.State{{ID: "a", Kind: domain.KindSplit}, {ID: "b"}, {ID: "c"}},
		[]domain.Transition{
			{From: "a", To: "b", ConditionKey: "Yes", Label: "Yes"},
			{From: "a", To: "c", ConditionKey: "next"},
		},
	)
	got := graph.Mermaid(g)
	assert.Contains(t, got, "    a --> |Yes| b\n")
	assert.Contains(t, got, "    a --> c\n")
}

func TestMermaid_FailureLinkStyleIndex(t *testing.T) {
	// Failure edge emitted second → styling references link index 1.
	g := newGraph(t,
		[]domain.State{{ID: "A", Kind: domain.KindSplit}, {ID: "B"}, {ID: "C"}},
		[]domain.Transition{
			{From: "A", To: "B", ConditionKey: "Yes", Label: "Yes", Outcome: domain.OutcomeSuccess},
			{From: "A", To: "C", ConditionKey: "No", Label: "No", Outcome: domain.OutcomeFailure},
		},
	)
	got := graph.Mermaid(g)
	assert.Contains(t, got, "    linkStyle 1 stroke:red\n")
	assert.NotContains(t, got, "linkStyle 0")
}

func TestMermaid_Deterministic(t *testing.T) {
	g := newGraph(t,
		[]domain.State{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]domain.Transition{
			{From: "a", To: "b", ConditionKey: "next"},
			{From: "b", To: "c", ConditionKey: "failed", Label: "failed", Outcome: domain.OutcomeFailure},
		},
	)
	first := graph.Mermaid(g)
	second := graph.Mermaid(g)
	assert.Equal(t, first, second)
}

func TestMermaid_Sanitization(t *testing.T) {
	g := newGraph(t,
		[]domain.State{
			{ID: "send-reply", DisplayName: `Reply "politely"`},
			{ID: "path/to.state"},
		},
		[]domain.Transition{
			{From: "send-reply", To: "path/to.state", ConditionKey: "sent", Label: "sent"},
		},
	)
	got := graph.Mermaid(g)
	assert.Contains(t, got, `send_reply("Reply 'politely'")`)
	assert.Contains(t, got, `path_to_state("path/to.state")`)
	assert.Contains(t, got, "    send_reply --> |sent| path_to_state\n")
}

func TestMermaid_SubflowReference(t *testing.T) {
	g := newGraph(t, []domain.State{
		{ID: "escalate", Kind: domain.KindRunSubflow, SubflowSID: "FWabc"},
	}, nil)
	got := graph.Mermaid(g)
	assert.Contains(t, got, `escalate[["escalate<br/>↪ FWabc"]]`)
	// The sub-flow's own states are never inlined.
	assert.Equal(t, 1, strings.Count(got, "\n    "))
}

func TestMermaid_OverlayIdentityLaw(t *testing.T) {
	g := newGraph(t,
		[]domain.State{{ID: "a"}, {ID: "b"}},
		[]domain.Transition{{From: "a", To: "b", ConditionKey: "next"}},
	)
	assert.Equal(t, graph.Mermaid(g), graph.Mermaid(g.Overlay(map[string]string{})))
}
