package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateNodeID = errors.New("duplicate node id")
	ErrDanglingEdge    = errors.New("connection references missing node")
	ErrUnknownType     = errors.New("unknown operation type")
	ErrEmptyRecipe     = errors.New("nothing to insert")
)

// FlowError wraps a structural problem found in a flow snapshot, tagged with
// the operation that found it and the offending element.
type FlowError struct {
	Op      string
	Subject string
	Err     error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("flow %s: %s: %v", e.Op, e.Subject, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

func NewFlowError(op, subject string, err error) *FlowError {
	return &FlowError{
		Op:      op,
		Subject: subject,
		Err:     err,
	}
}

func IsFlowError(err error) bool {
	var flowErr *FlowError
	return errors.As(err, &flowErr)
}

func IsDuplicateNodeID(err error) bool {
	return errors.Is(err, ErrDuplicateNodeID)
}

func IsDanglingEdge(err error) bool {
	return errors.Is(err, ErrDanglingEdge)
}
