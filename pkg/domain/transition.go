package domain

// Outcome is a coarse classification of a transition, used for styling.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeNeutral Outcome = "neutral"
)

// Transition is a directed edge between two states.
type Transition struct {
	From string
	To   string

	// ConditionKey identifies this edge among the fan-out of From.
	// For event transitions it is the event name; for matched conditions
	// it is the condition's friendly name.
	ConditionKey string

	// Label is the human text shown on the edge. It may be empty for the
	// implicit "next" transition.
	Label string

	Outcome Outcome
}
