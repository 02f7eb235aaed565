package flow

import "github.com/mitchellh/mapstructure"

// SubflowProperties are the fields of a run-subflow widget the tool reads.
type SubflowProperties struct {
	FlowSID      string `mapstructure:"flow_sid"`
	FlowRevision string `mapstructure:"flow_revision"`
}

// SubflowProps decodes the loosely typed properties of a run-subflow
// widget. Missing or malformed properties yield the zero value; widget
// property bags are operator-authored and never fatal here.
func SubflowProps(rec *StateRecord) SubflowProperties {
	var props SubflowProperties
	if rec == nil || rec.Properties == nil {
		return props
	}
	_ = mapstructure.Decode(rec.Properties, &props)
	return props
}
