package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidPatchOperation = errors.New("invalid patch operation")
	ErrEmptyPatchRequest     = errors.New("empty patch request")
)

var validate = validator.New()

// Operation is the kind of a JSON patch operation, serialized lowercased.
type Operation string

const (
	OperationReplace Operation = "replace"
	OperationAdd     Operation = "add"
)

// ParseOperation accepts any casing, e.g. "REPLACE" or "replace".
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OperationReplace, OperationAdd:
		return op, nil
	}
	return "", fmt.Errorf("%w: unknown op %q", ErrInvalidPatchOperation, s)
}

// PatchOperation is one modification of a remote resource: the values replace
// or are added at path. It is built right before a patch call and not changed afterwards.
type PatchOperation struct {
	op    Operation
	path  string
	value []Updatable
}

type patchOperationJSON struct {
	Op    Operation   `json:"op" validate:"oneof=replace add"`
	Path  string      `json:"path" validate:"required"`
	Value []Updatable `json:"value" validate:"min=1,dive,required"`
}

func NewPatchOperation(op Operation, path string, values ...Updatable) (PatchOperation, error) {
	w := patchOperationJSON{Op: op, Path: path, Value: values}
	if err := validate.Struct(w); err != nil {
		return PatchOperation{}, fmt.Errorf("%w: %v", ErrInvalidPatchOperation, err)
	}
	return PatchOperation{op: op, path: path, value: values}, nil
}

func (p PatchOperation) Op() Operation {
	return p.op
}

func (p PatchOperation) Path() string {
	return p.path
}

func (p PatchOperation) Value() []Updatable {
	return p.value
}

func (p PatchOperation) MarshalJSON() ([]byte, error) {
	return json.Marshal(patchOperationJSON{Op: p.op, Path: p.path, Value: p.value})
}

func (p *PatchOperation) UnmarshalJSON(data []byte) error {
	var w struct {
		Op    string            `json:"op"`
		Path  string            `json:"path"`
		Value []json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	op, err := ParseOperation(w.Op)
	if err != nil {
		return err
	}
	values := make([]Updatable, 0, len(w.Value))
	for _, v := range w.Value {
		values = append(values, RawUpdatable(v))
	}
	parsed, err := NewPatchOperation(op, w.Path, values...)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PatchRequest is the body of a PATCH call: a JSON array of operations.
type PatchRequest []PatchOperation

func (r PatchRequest) Body() ([]byte, error) {
	if len(r) == 0 {
		return nil, ErrEmptyPatchRequest
	}
	for i, op := range r {
		if err := validate.Struct(patchOperationJSON{Op: op.op, Path: op.path, Value: op.value}); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %v", ErrInvalidPatchOperation, i, err)
		}
	}
	return json.Marshal([]PatchOperation(r))
}

func ParsePatchRequest(data []byte) (PatchRequest, error) {
	var ops []PatchOperation
	if err := json.Unmarshal(data, &ops); err != nil {
		if errors.Is(err, ErrInvalidPatchOperation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatchOperation, err)
	}
	if len(ops) == 0 {
		return nil, ErrEmptyPatchRequest
	}
	return PatchRequest(ops), nil
}
