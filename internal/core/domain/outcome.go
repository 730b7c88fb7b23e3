// Package domain defines the core domain models for the CW20 ledger.
package domain

// Action tags carried by operation outcomes.
const (
	ActionInstantiate       = "instantiate"
	ActionTransfer          = "transfer"
	ActionApprove           = "approve"
	ActionTransferFrom      = "transfer_from"
	ActionDecreaseAllowance = "decrease_allowance"
	ActionMint              = "mint"
	ActionBurn              = "burn"
	ActionPause             = "pause"
	ActionUnpause           = "unpause"
)

// Attribute is one key-value pair attached to an Outcome.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Outcome describes what a mutating operation changed. The host formats
// and emits it as events; the ledger only records the facts.
type Outcome struct {
	Action     string      `json:"action"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// NewOutcome creates an Outcome for the given action tag.
func NewOutcome(action string) *Outcome {
	return &Outcome{Action: action}
}

// Add appends an attribute and returns the outcome for chaining.
func (o *Outcome) Add(key, value string) *Outcome {
	o.Attributes = append(o.Attributes, Attribute{Key: key, Value: value})
	return o
}

// Attribute returns the value for a key, if present.
func (o *Outcome) Attribute(key string) (string, bool) {
	for _, a := range o.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
