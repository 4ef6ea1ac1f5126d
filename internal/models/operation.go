package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Action identifies the kind of storage operation the model requested.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var validate = validator.New()

// Operation is one instruction from a parsed model response. Filter and Data
// are kept raw until Decode resolves them into the action-specific form, so a
// batch with an unrecognized action still round-trips without error.
type Operation struct {
	Action Action          `json:"action"`
	Filter *ItemFilter     `json:"filter,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Batch is the parsed model response: a declared operation count plus the
// ordered operation sequence. The declared count is informational only;
// execution is driven by the actual sequence length.
type Batch struct {
	TotalOperations int         `json:"totalOperations"`
	Operations      []Operation `json:"operations"`
}

// Op is the decoded, action-specific form of an Operation.
type Op interface {
	isOp()
}

// CreateOp inserts a new item built from Data.
type CreateOp struct {
	Data ItemData
}

// ReadOp looks up items matching Filter.
type ReadOp struct {
	Filter *ItemFilter
}

// UpdateOp resolves Filter and applies Patch to each matched item.
type UpdateOp struct {
	Filter *ItemFilter
	Patch  ItemPatch
}

// DeleteOp resolves Filter and removes each matched item.
type DeleteOp struct {
	Filter *ItemFilter
}

// UnknownOp marks an action outside the recognized set. It is reported
// inline per-operation rather than aborting the batch.
type UnknownOp struct {
	Action Action
}

func (CreateOp) isOp()  {}
func (ReadOp) isOp()    {}
func (UpdateOp) isOp()  {}
func (DeleteOp) isOp()  {}
func (UnknownOp) isOp() {}

// UnknownActionResult is the inline result marker for an unrecognized action.
type UnknownActionResult struct {
	Error string `json:"error"`
}

// Decode resolves the operation into its tagged variant, validating the
// payload against the Item shape. Shape mismatches return an error;
// unrecognized actions decode to UnknownOp without error.
func (o *Operation) Decode() (Op, error) {
	switch o.Action {
	case ActionCreate:
		if len(o.Data) == 0 {
			return nil, fmt.Errorf("create operation requires data")
		}
		var data ItemData
		if err := json.Unmarshal(o.Data, &data); err != nil {
			return nil, fmt.Errorf("create data does not match item shape: %w", err)
		}
		if err := validate.Struct(&data); err != nil {
			return nil, fmt.Errorf("create data is incomplete: %w", err)
		}
		return CreateOp{Data: data}, nil

	case ActionRead:
		return ReadOp{Filter: o.Filter}, nil

	case ActionUpdate:
		if len(o.Data) == 0 {
			return nil, fmt.Errorf("update operation requires data")
		}
		var patch ItemPatch
		if err := json.Unmarshal(o.Data, &patch); err != nil {
			return nil, fmt.Errorf("update data does not match item shape: %w", err)
		}
		if patch.IsEmpty() {
			return nil, fmt.Errorf("update data must set at least one field")
		}
		return UpdateOp{Filter: o.Filter, Patch: patch}, nil

	case ActionDelete:
		return DeleteOp{Filter: o.Filter}, nil

	default:
		return UnknownOp{Action: o.Action}, nil
	}
}
