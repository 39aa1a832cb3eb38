package config

import "fmt"

type fieldKind int

const (
	fieldAbsent fieldKind = iota
	fieldInvalid
	fieldValid
)

// FieldState is one configuration field as reported by a single source.
// A field is either absent, present with a parsed value, or present but
// unusable (for example a listener port that did not parse). Keeping the
// broken state around instead of failing immediately lets a
// higher-precedence source override it before anyone has to care.
type FieldState[T any] struct {
	kind fieldKind
	val  T
	err  error
}

// Absent returns the state for a field the source did not mention.
func Absent[T any]() FieldState[T] {
	return FieldState[T]{}
}

// Valid returns the state for a field that parsed successfully.
func Valid[T any](v T) FieldState[T] {
	return FieldState[T]{kind: fieldValid, val: v}
}

// Invalid returns the state for a field that was present but unusable.
func Invalid[T any](err error) FieldState[T] {
	return FieldState[T]{kind: fieldInvalid, err: err}
}

// IsAbsent reports whether the source did not supply the field.
func (f FieldState[T]) IsAbsent() bool {
	return f.kind == fieldAbsent
}

// Get returns the parsed value, or the parse error for an invalid field.
// Calling Get on an absent field is a programming error.
func (f FieldState[T]) Get() (T, error) {
	var zero T
	switch f.kind {
	case fieldValid:
		return f.val, nil
	case fieldInvalid:
		return zero, f.err
	default:
		return zero, fmt.Errorf("field is absent")
	}
}

// overrideField keeps base only when override is absent. Precedence is by
// presence, not validity: an invalid override still masks a valid base.
func overrideField[T any](base, override FieldState[T]) FieldState[T] {
	if override.IsAbsent() {
		return base
	}
	return override
}
