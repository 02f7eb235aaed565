package flow

import "fmt"

// TriggerType selects a flow's entry state. The value is the event name
// the trigger widget uses for that entry.
type TriggerType string

const (
	TriggerIncomingMessage TriggerType = "incomingMessage"
	TriggerIncomingCall    TriggerType = "incomingCall"
	TriggerRESTAPI         TriggerType = "incomingRequest"
	TriggerSubflow         TriggerType = "incomingParent"
)

// Event returns the trigger widget event name for this trigger type.
func (t TriggerType) Event() string { return string(t) }

func (t TriggerType) String() string { return string(t) }

var triggerAliases = map[string]TriggerType{
	"incoming-message": TriggerIncomingMessage,
	"incomingMessage":  TriggerIncomingMessage,
	"incoming-call":    TriggerIncomingCall,
	"incomingCall":     TriggerIncomingCall,
	"rest-api":         TriggerRESTAPI,
	"incomingRequest":  TriggerRESTAPI,
	"subflow":          TriggerSubflow,
	"incomingParent":   TriggerSubflow,
}

// ParseTriggerType resolves a CLI spelling (e.g. "incoming-call") or a raw
// event name into a TriggerType.
func ParseTriggerType(s string) (TriggerType, error) {
	if t, ok := triggerAliases[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("invalid trigger type %q (valid: incoming-message, incoming-call, rest-api, subflow)", s)
}

// TriggerTypeNames lists the CLI spellings, for help text.
func TriggerTypeNames() []string {
	return []string{"incoming-message", "incoming-call", "rest-api", "subflow"}
}
