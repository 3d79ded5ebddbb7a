package go4rs

import (
	"encoding/json"
	"fmt"
)

// Invocation is the wire descriptor delivered to the native side for one
// callback: the value's type name plus its JSON form, so the native side
// can perform a typed call. The field names match what the Rust side
// deserializes.
type Invocation struct {
	ClassName string `json:"class_name"`
	JSON      string `json:"json"`
}

// NewInvocation encodes value into an invocation descriptor
func NewInvocation(value any) (Invocation, error) {
	encoded, err := Encode(value)
	if err != nil {
		return Invocation{}, err
	}
	return Invocation{
		ClassName: encoded.Type().Name(),
		JSON:      encoded.JSON(),
	}, nil
}

// Marshal returns the descriptor's own JSON form, the exact text handed to
// the native send primitive
func (inv Invocation) Marshal() (string, error) {
	b, err := json.Marshal(inv)
	if err != nil {
		return "", NewBridgeError(ErrorCodeEncoding,
			fmt.Sprintf("serializing invocation for %s: %v", inv.ClassName, err))
	}
	return string(b), nil
}
