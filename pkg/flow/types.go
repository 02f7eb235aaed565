package flow

// Definition is the raw flow definition as exported by the Studio API.
type Definition struct {
	Description  string          `json:"description,omitempty"`
	States       []StateRecord   `json:"states"`
	InitialState string          `json:"initial_state,omitempty"`
	Flags        map[string]bool `json:"flags,omitempty"`
}

// StateRecord is one widget in the raw definition. Properties is left
// loosely typed; widget kinds carry arbitrary fields and the accessors in
// properties.go decode the few the tool needs.
type StateRecord struct {
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Transitions []TransitionRecord `json:"transitions,omitempty"`
	Properties  map[string]any     `json:"properties,omitempty"`
}

// TransitionRecord is one outgoing edge of a widget.
type TransitionRecord struct {
	Event      string      `json:"event"`
	Next       string      `json:"next,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// Condition is a matched branch of a split widget.
type Condition struct {
	FriendlyName string   `json:"friendly_name"`
	Type         string   `json:"type,omitempty"`
	Arguments    []string `json:"arguments,omitempty"`
	Value        string   `json:"value,omitempty"`
}

// stateMap indexes states by name for traversal.
func (d *Definition) stateMap() map[string]*StateRecord {
	m := make(map[string]*StateRecord, len(d.States))
	for i := range d.States {
		m[d.States[i].Name] = &d.States[i]
	}
	return m
}
