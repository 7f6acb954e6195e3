package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Family sentinels. Every typed error below matches exactly one of these with errors.Is.
var (
	ErrCancelled        = errors.New("input prompt cancelled by user")
	ErrConfiguration    = errors.New("invalid configuration")
	ErrCorrupted        = errors.New("persisted value corrupted")
	ErrGit              = errors.New("git operation failed")
	ErrNotFound         = errors.New("not found")
	ErrRequired         = errors.New("missing required input")
	ErrTemplateNotFound = errors.New("template not found")
	ErrUnknown          = errors.New("unknown store error")
	ErrValidation       = errors.New("validation failed")
)

// StoreErrorKind classifies failures of the persisted context store
type StoreErrorKind int

const (
	StoreNotFound StoreErrorKind = iota
	StoreCorrupted
	StoreValidation
	StoreUnknown
)

func (k StoreErrorKind) sentinel() error {
	switch k {
	case StoreNotFound:
		return ErrNotFound
	case StoreCorrupted:
		return ErrCorrupted
	case StoreValidation:
		return ErrValidation
	default:
		return ErrUnknown
	}
}

// StoreError is returned by every ports.ContextStore operation
type StoreError struct {
	Kind StoreErrorKind
	What string
	Err  error
}

func (e *StoreError) Error() string {
	switch e.Kind {
	case StoreNotFound:
		return fmt.Sprintf("requested %q not found in persisted store", e.What)
	case StoreCorrupted:
		return fmt.Sprintf("persisted %q has been corrupted or is out of date", e.What)
	case StoreValidation:
		if e.Err != nil {
			return fmt.Sprintf("failed to persist or retrieve %q: %v", e.What, e.Err)
		}
		return fmt.Sprintf("failed to persist or retrieve %q", e.What)
	default:
		if e.Err != nil {
			return fmt.Sprintf("unknown error occurred while accessing persisted store: %v", e.Err)
		}
		return "unknown error occurred while accessing persisted store"
	}
}

func (e *StoreError) Is(target error) bool { return target == e.Kind.sentinel() }

func (e *StoreError) Unwrap() error { return e.Err }

// NewNotFoundError builds a StoreNotFound error
func NewNotFoundError(what string) *StoreError {
	return &StoreError{Kind: StoreNotFound, What: what}
}

// NewCorruptedError builds a StoreCorrupted error
func NewCorruptedError(what string, err error) *StoreError {
	return &StoreError{Kind: StoreCorrupted, What: what, Err: err}
}

// NewStoreValidationError builds a StoreValidation error
func NewStoreValidationError(what string, err error) *StoreError {
	return &StoreError{Kind: StoreValidation, What: what, Err: err}
}

// NewUnknownStoreError builds a StoreUnknown error
func NewUnknownStoreError(err error) *StoreError {
	return &StoreError{Kind: StoreUnknown, Err: err}
}

// InputErrorKind classifies user input failures
type InputErrorKind int

const (
	InputRequired InputErrorKind = iota
	InputCancelled
	InputValidation
	InputTemplateNotFound
)

// InputError reports a problem with a value supplied (or not supplied) by the user
type InputError struct {
	Kind    InputErrorKind
	Field   string
	Message string
}

func (e *InputError) Error() string {
	switch e.Kind {
	case InputRequired:
		return fmt.Sprintf("missing required %q input", e.Field)
	case InputCancelled:
		return ErrCancelled.Error()
	case InputTemplateNotFound:
		return fmt.Sprintf("template %q not found in configuration", e.Field)
	default:
		return fmt.Sprintf("invalid input %q found %s", e.Field, strings.ToLower(e.Message))
	}
}

func (e *InputError) Is(target error) bool {
	switch e.Kind {
	case InputRequired:
		return target == ErrRequired
	case InputCancelled:
		return target == ErrCancelled
	case InputTemplateNotFound:
		return target == ErrTemplateNotFound
	default:
		return target == ErrValidation
	}
}

// NewRequiredError reports a mandatory value missing while prompts are disabled
func NewRequiredError(field string) *InputError {
	return &InputError{Kind: InputRequired, Field: field}
}

// NewCancelledError reports an aborted prompt
func NewCancelledError() *InputError {
	return &InputError{Kind: InputCancelled}
}

// NewInputValidationError reports an invalid user supplied value
func NewInputValidationError(field, message string) *InputError {
	return &InputError{Kind: InputValidation, Field: field, Message: message}
}

// NewTemplateNotFoundError reports a template name missing from the commit map
func NewTemplateNotFoundError(name string) *InputError {
	return &InputError{Kind: InputTemplateNotFound, Field: name}
}

// ConfigError reports an unreadable or unparsable template definition file
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("invalid configuration %s", strings.ToLower(e.Message))
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigError) Unwrap() error { return e.Err }

// GitError wraps a failed call into the version-control collaborator
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("git %s failed", e.Op)
}

func (e *GitError) Is(target error) bool { return target == ErrGit }

func (e *GitError) Unwrap() error { return e.Err }
