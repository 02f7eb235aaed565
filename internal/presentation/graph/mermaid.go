package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/studiomap/pkg/domain"
)

// Mermaid produces a fenced Mermaid flowchart block from a graph.
// It applies semantic shapes:
// - Trigger: ([Stadium])
// - Split (decision): {Diamond}
// - Run-subflow: [[Subroutine]]
// - End-flow: ((Circle))
// - Default: (Rounded)
// Failure edges get a red stroke via a positional linkStyle directive.
// Output is deterministic for an equal graph: node order is the graph's
// state insertion order and edge order is its transition order.
func Mermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("flowchart TD\n")

	for _, state := range g.States() {
		sb.WriteString(fmt.Sprintf("    %s\n", nodeDef(state)))
	}

	// linkStyle is positional in Mermaid, so the index is counted in the
	// same pass that emits edges.
	linkIndex := 0
	for _, t := range g.Transitions() {
		from := sanitizeMermaidID(t.From)
		to := sanitizeMermaidID(t.To)
		if t.Label != "" {
			sb.WriteString(fmt.Sprintf("    %s --> |%s| %s\n", from, escapeLabel(t.Label), to))
		} else {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
		}
		if t.Outcome == domain.OutcomeFailure {
			sb.WriteString(fmt.Sprintf("    linkStyle %d stroke:red\n", linkIndex))
		}
		linkIndex++
	}

	sb.WriteString("```")
	return sb.String()
}

// nodeDef returns a node declaration with the shape for the state's kind.
func nodeDef(state domain.State) string {
	id := sanitizeMermaidID(state.ID)
	label := escapeLabel(state.DisplayName)

	switch state.Kind {
	case domain.KindTrigger:
		return fmt.Sprintf("%s([\"%s\"])", id, label)
	case domain.KindSplit:
		return fmt.Sprintf("%s{\"%s\"}", id, label)
	case domain.KindRunSubflow:
		if state.SubflowSID != "" {
			// Reference the target flow by SID; sub-flows are separate diagrams.
			return fmt.Sprintf("%s[[\"%s<br/>↪ %s\"]]", id, label, state.SubflowSID)
		}
		return fmt.Sprintf("%s[[\"%s\"]]", id, label)
	case domain.KindEndFlow:
		return fmt.Sprintf("%s((\"%s\"))", id, label)
	default:
		return fmt.Sprintf("%s(\"%s\")", id, label)
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// escapeLabel rewrites characters that break Mermaid labels.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "|", "/")
	return s
}
