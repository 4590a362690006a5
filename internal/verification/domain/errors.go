package domain

import "errors"

var (
	ErrDuplicateProject = errors.New("project already registered")
	ErrUnauthorized     = errors.New("caller is not the administrator")
	ErrNotFound         = errors.New("project not found")
	ErrAlreadyFinalized = errors.New("project already finalized")
)

// Code is the numeric outcome reported to hosts that expect a tagged result
// instead of a Go error.
type Code uint8

const (
	CodeOK               Code = 0
	CodeDuplicateProject Code = 1
	CodeUnauthorized     Code = 2
	CodeNotFound         Code = 3
	CodeAlreadyFinalized Code = 4
	// CodeInternal covers store failures, which are outside the registry taxonomy.
	CodeInternal Code = 255
)

// CodeOf maps err onto its outcome code. A nil error is CodeOK.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrDuplicateProject):
		return CodeDuplicateProject
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyFinalized):
		return CodeAlreadyFinalized
	default:
		return CodeInternal
	}
}

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeDuplicateProject:
		return "duplicate_project"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeNotFound:
		return "not_found"
	case CodeAlreadyFinalized:
		return "already_finalized"
	default:
		return "internal"
	}
}
