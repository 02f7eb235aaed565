package flow

import (
	"errors"
	"fmt"

	"github.com/aretw0/studiomap/pkg/domain"
)

// ErrUnknownTrigger is returned when a trigger type has no binding in the
// flow's trigger widget.
var ErrUnknownTrigger = errors.New("trigger type not bound in flow")

// widgetTypeTrigger is the type of the implicit entry widget every flow has.
const widgetTypeTrigger = "trigger"

// Events that mark a transition as failed for styling purposes.
var failureEvents = map[string]bool{
	"failed":  true,
	"timeout": true,
}

// Events that mark a transition as a positive branch.
var successEvents = map[string]bool{
	"match":     true,
	"success":   true,
	"completed": true,
	"sent":      true,
	"delivered": true,
	"answered":  true,
}

// EntryState resolves the entry state id for a trigger type by scanning
// the trigger widget's bindings.
func EntryState(def *Definition, trigger TriggerType) (string, error) {
	for i := range def.States {
		if def.States[i].Type != widgetTypeTrigger {
			continue
		}
		for _, tr := range def.States[i].Transitions {
			if tr.Event == trigger.Event() && tr.Next != "" {
				return tr.Next, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTrigger, trigger)
}

// Extract builds the graph of states reachable from the entry state bound
// to trigger. Traversal is breadth-first; visited tracking by state id
// keeps cyclic flows from looping. States not reachable from the chosen
// trigger are excluded, which is the intended per-trigger scoping rather
// than an error.
func Extract(def *Definition, trigger TriggerType) (*domain.Graph, error) {
	entry, err := EntryState(def, trigger)
	if err != nil {
		return nil, err
	}

	records := def.stateMap()
	entryRec, ok := records[entry]
	if !ok {
		return nil, fmt.Errorf("%w: %s (entry state %q missing from definition)", ErrUnknownTrigger, trigger, entry)
	}

	g := domain.NewGraph()
	if err := g.AddState(toState(entryRec)); err != nil {
		return nil, err
	}

	queue := []string{entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, tr := range records[id].Transitions {
			if tr.Next == "" {
				continue
			}
			nextRec, ok := records[tr.Next]
			if !ok {
				// Dangling target; leave the edge out rather than fail.
				continue
			}
			if !g.Has(tr.Next) {
				if err := g.AddState(toState(nextRec)); err != nil {
					return nil, err
				}
				queue = append(queue, tr.Next)
			}

			key, label := transitionLabel(tr)
			if err := g.AddTransition(domain.Transition{
				From:         id,
				To:           tr.Next,
				ConditionKey: key,
				Label:        label,
				Outcome:      classifyOutcome(tr),
			}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// toState maps a raw widget record to a graph state.
func toState(rec *StateRecord) domain.State {
	s := domain.State{
		ID:   rec.Name,
		Kind: domain.KindOf(rec.Type),
	}
	if s.Kind == domain.KindRunSubflow {
		s.SubflowSID = SubflowProps(rec).FlowSID
	}
	return s
}

// transitionLabel derives the condition key and human label for an edge.
// Matched conditions use the condition's friendly name; plain events use
// the event name, except the implicit "next" which renders unlabeled.
func transitionLabel(tr TransitionRecord) (key, label string) {
	if len(tr.Conditions) > 0 {
		name := tr.Conditions[0].FriendlyName
		return name, name
	}
	if tr.Event == "next" {
		return tr.Event, ""
	}
	return tr.Event, tr.Event
}

// classifyOutcome buckets a transition into success/failure/neutral.
// Unknown events default to neutral; classification is never fatal.
func classifyOutcome(tr TransitionRecord) domain.Outcome {
	if len(tr.Conditions) > 0 {
		return domain.OutcomeSuccess
	}
	if failureEvents[tr.Event] {
		return domain.OutcomeFailure
	}
	if successEvents[tr.Event] {
		return domain.OutcomeSuccess
	}
	return domain.OutcomeNeutral
}
