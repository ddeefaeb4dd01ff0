package blocks

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBlockType indicates a node whose type tag has no entry in
	// the block registry.
	ErrUnsupportedBlockType = errors.New("blocks: unsupported block type")
	// ErrMalformedOverride indicates a registry override entry without a
	// render function.
	ErrMalformedOverride = errors.New("blocks: override entry has no render function")
	// ErrNilNode indicates a nil node in a sibling list.
	ErrNilNode = errors.New("blocks: nil node in sibling list")
)

// UnsupportedBlockTypeError names the type tag missing from the registry.
type UnsupportedBlockTypeError struct {
	BlockType string
}

func (e *UnsupportedBlockTypeError) Error() string {
	if e == nil {
		return ErrUnsupportedBlockType.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnsupportedBlockType.Error(), e.BlockType)
}

func (e *UnsupportedBlockTypeError) Unwrap() error {
	return ErrUnsupportedBlockType
}

// MalformedOverrideError names the offending override key.
type MalformedOverrideError struct {
	BlockType string
}

func (e *MalformedOverrideError) Error() string {
	if e == nil {
		return ErrMalformedOverride.Error()
	}
	return fmt.Sprintf("%s: %q", ErrMalformedOverride.Error(), e.BlockType)
}

func (e *MalformedOverrideError) Unwrap() error {
	return ErrMalformedOverride
}
