package inline

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedRunType indicates a run whose type the renderer cannot
	// turn into text (e.g. an unresolved reference to external content).
	ErrUnsupportedRunType = errors.New("inline: unsupported run type")
	// ErrUnsupportedStyleKind indicates a style kind present on a run with no
	// render function registered for it.
	ErrUnsupportedStyleKind = errors.New("inline: unsupported style kind")
	// ErrMissingStyleValue indicates a value-carrying style kind (link,
	// color) annotated without its payload.
	ErrMissingStyleValue = errors.New("inline: style value is required")
	// ErrMalformedOverride indicates a registry override entry without a
	// render function.
	ErrMalformedOverride = errors.New("inline: override entry has no render function")
)

// UnsupportedRunTypeError names the run type that cannot be rendered.
type UnsupportedRunTypeError struct {
	RunType string
}

func (e *UnsupportedRunTypeError) Error() string {
	if e == nil {
		return ErrUnsupportedRunType.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnsupportedRunType.Error(), e.RunType)
}

func (e *UnsupportedRunTypeError) Unwrap() error {
	return ErrUnsupportedRunType
}

// UnsupportedStyleKindError names the style kind missing from the registry.
type UnsupportedStyleKindError struct {
	Kind string
}

func (e *UnsupportedStyleKindError) Error() string {
	if e == nil {
		return ErrUnsupportedStyleKind.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnsupportedStyleKind.Error(), e.Kind)
}

func (e *UnsupportedStyleKindError) Unwrap() error {
	return ErrUnsupportedStyleKind
}

// MissingStyleValueError names the value-carrying kind annotated without a
// payload.
type MissingStyleValueError struct {
	Kind string
}

func (e *MissingStyleValueError) Error() string {
	if e == nil {
		return ErrMissingStyleValue.Error()
	}
	return fmt.Sprintf("%s: %q", ErrMissingStyleValue.Error(), e.Kind)
}

func (e *MissingStyleValueError) Unwrap() error {
	return ErrMissingStyleValue
}

// MalformedOverrideError names the offending override key.
type MalformedOverrideError struct {
	Kind string
}

func (e *MalformedOverrideError) Error() string {
	if e == nil {
		return ErrMalformedOverride.Error()
	}
	return fmt.Sprintf("%s: %q", ErrMalformedOverride.Error(), e.Kind)
}

func (e *MalformedOverrideError) Unwrap() error {
	return ErrMalformedOverride
}
