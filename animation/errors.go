package animation

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; the typed errors below match them.
var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrDanglingTarget   = errors.New("dangling target")
	ErrTargetCapability = errors.New("target lacks capability")
)

// MissingParameterError reports a behaviour parameter that was never
// supplied. For relative behaviours the start snapshot (x0, y0) counts as a
// parameter: it is missing until the scheduler has run the entry's start frame.
type MissingParameterError struct {
	Behavior string
	Name     string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing parameter %q", e.Behavior, e.Name)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// DanglingTargetError reports a handle whose target was removed from its
// Stage, or which that Stage never issued.
type DanglingTargetError struct {
	Handle Handle
}

func (e *DanglingTargetError) Error() string {
	return fmt.Sprintf("dangling target %v", e.Handle)
}

func (e *DanglingTargetError) Is(target error) bool {
	return target == ErrDanglingTarget
}

// TargetCapabilityError reports a target that does not implement the
// interface a behaviour writes through. Target is nil for entries without one.
type TargetCapabilityError struct {
	Behavior   string
	Capability string
	Target     interface{}
}

func (e *TargetCapabilityError) Error() string {
	if e.Target == nil {
		return fmt.Sprintf("%s: no target to %s", e.Behavior, e.Capability)
	}
	return fmt.Sprintf("%s: target %T cannot %s", e.Behavior, e.Target, e.Capability)
}

func (e *TargetCapabilityError) Is(target error) bool {
	return target == ErrTargetCapability
}

// EntryError wraps a failure raised while executing one entry.
type EntryError struct {
	Index int
	Frame float64
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d at frame %g: %v", e.Index, e.Frame, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
