// Package content provides the pieces shared by the item, monster, and scene
// content pipelines: the error taxonomy, raw JSON document validation, and
// the order-preserving batch loader.
package content

import "fmt"

// IndexError reports that a vertical's index.json could not be loaded:
// missing file, unreadable file, malformed JSON, or a failed structural
// check. An IndexError is always fatal to the operation that raised it.
type IndexError struct {
	// Vertical is the lowercase vertical name ("item", "monster", "scene").
	Vertical string
	Err      error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Failed to load %s index: %v", e.Vertical, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// FileError reports that a single content file could not be loaded. In batch
// operations the entry is skipped; in single-entity lookups the error
// propagates to the caller.
type FileError struct {
	Vertical string
	File     string
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("Failed to load %s from %s: %v", e.Vertical, e.File, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ValidationError reports a required-field defect in a content file: the
// field is absent, the id is empty or not a string, or a field that must be
// an array is not one.
type ValidationError struct {
	// Entity is the capitalized vertical name ("Item", "Monster", "Scene").
	Entity string
	Field  string
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

// MissingField builds the ValidationError for an absent required field.
func MissingField(entity, field string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Field:  field,
		msg:    fmt.Sprintf("%s data missing required field: %s", entity, field),
	}
}

// EmptyID builds the ValidationError for an empty or non-string id field.
func EmptyID(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Field:  "id",
		msg:    fmt.Sprintf("%s ID must be a non-empty string", entity),
	}
}

// NotArray builds the ValidationError for a field that must be a JSON array.
func NotArray(entity, field string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Field:  field,
		msg:    fmt.Sprintf("%s %s must be an array", entity, field),
	}
}

// ConversionError reports an enum-like field whose value has no mapping to a
// runtime constant.
type ConversionError struct {
	// What names the field being coerced, e.g. "item type" or "scene lighting".
	What  string
	Value string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.What, e.Value)
}

// NotFoundError reports a lookup for an id that the loaded index does not
// list.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.Entity, e.ID)
}
