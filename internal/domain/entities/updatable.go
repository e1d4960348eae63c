package entities

import "encoding/json"

// Updatable is implemented by resource fragments that can be sent as the value
// of a PatchOperation. Each one owns its JSON wire form.
type Updatable interface {
	json.Marshaler
}

// RawUpdatable carries an already serialized value, e.g. one decoded from a
// patch request body.
type RawUpdatable json.RawMessage

var _ Updatable = RawUpdatable(nil)

func (r RawUpdatable) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}
