package citation

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by errors.Is for any MissingFieldError.
	ErrMissingField = errors.New("missing required field")
	// ErrUnknownType is matched by errors.Is for any UnknownTypeError or UnknownKindError.
	ErrUnknownType = errors.New("unknown citation type")
	// ErrUnknownCategory is returned by ParseCategory.
	ErrUnknownCategory = errors.New("unknown citation category")
)

// MissingFieldError reports a template-critical field left empty.
type MissingFieldError struct {
	Kind  Kind
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s citation requires %s", ErrMissingField, e.Kind, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UnknownTypeError reports a category/index pair outside the registry.
type UnknownTypeError struct {
	Category Category
	Index    int
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %s type %d", ErrUnknownType, e.Category, e.Index)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// UnknownKindError reports a Kind value with no variant.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: kind %d", ErrUnknownType, int(e.Kind))
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownType
}
