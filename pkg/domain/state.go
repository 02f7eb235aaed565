package domain

// Kind classifies a state by its Studio widget type.
type Kind string

// Widget kind constants cover the types the renderer distinguishes.
// Anything the platform adds later maps to KindDefault.
const (
	KindTrigger     Kind = "trigger"
	KindSayPlay     Kind = "say-play"
	KindSendMessage Kind = "send-message"
	KindGather      Kind = "gather-input-on-call"
	KindSplit       Kind = "split-based-on"
	KindConnectCall Kind = "connect-call-to"
	KindSetVars     Kind = "set-variables"
	KindRunSubflow  Kind = "run-subflow"
	KindHTTPRequest Kind = "make-http-request"
	KindEndFlow     Kind = "end-flow"

	KindDefault Kind = "default"
)

var knownKinds = map[string]Kind{
	string(KindTrigger):     KindTrigger,
	string(KindSayPlay):     KindSayPlay,
	string(KindSendMessage): KindSendMessage,
	string(KindGather):      KindGather,
	string(KindSplit):       KindSplit,
	string(KindConnectCall): KindConnectCall,
	string(KindSetVars):     KindSetVars,
	string(KindRunSubflow):  KindRunSubflow,
	string(KindHTTPRequest): KindHTTPRequest,
	string(KindEndFlow):     KindEndFlow,
}

// KindOf maps a raw widget type string to a Kind.
// Unknown widget types are never an error.
func KindOf(widgetType string) Kind {
	if k, ok := knownKinds[widgetType]; ok {
		return k
	}
	return KindDefault
}

// State is one node in the flow graph.
type State struct {
	ID          string
	Kind        Kind
	DisplayName string

	// SubflowSID references the flow a run-subflow widget invokes.
	// Sub-flows are rendered as a single node, never inlined.
	SubflowSID string
}
