package model

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrOrderAborted  = errors.New("order aborted")
	ErrPersistence   = errors.New("persistence failure")
)

type ErrorKind int

const (
	NoError ErrorKind = iota
	InvalidChoice
	AbortedOrder
	PersistenceFailure
	Unexpected
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "none"
	case InvalidChoice:
		return "invalid choice"
	case AbortedOrder:
		return "aborted order"
	case PersistenceFailure:
		return "persistence failure"
	default:
		return "unexpected"
	}
}

func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrOrderAborted):
		return AbortedOrder
	case errors.Is(err, ErrInvalidChoice):
		return InvalidChoice
	case errors.Is(err, ErrPersistence):
		return PersistenceFailure
	default:
		return Unexpected
	}
}

// PersistenceError reports a failed storage operation. It matches ErrPersistence.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
