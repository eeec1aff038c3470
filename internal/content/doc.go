package content

import (
	"errors"

	"github.com/tidwall/gjson"
)

// Document defects detected before any field validation runs.
var (
	ErrEmptyFile   = errors.New("file is empty")
	ErrInvalidJSON = errors.New("malformed JSON")
	ErrNotObject   = errors.New("content must be a JSON object")
)

// Doc wraps a parsed content file. Field checks run against the raw JSON so
// that "absent" and "present but zero" stay distinguishable, and so the scene
// loader can walk the exits object in document order.
type Doc struct {
	raw  []byte
	root gjson.Result
}

// ParseDoc validates that data is a non-empty JSON object and wraps it.
//
// Postcondition: returns a non-nil Doc, or one of ErrEmptyFile,
// ErrInvalidJSON, ErrNotObject.
func ParseDoc(data []byte) (*Doc, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}
	return &Doc{raw: data, root: root}, nil
}

// Raw returns the underlying JSON bytes.
func (d *Doc) Raw() []byte { return d.raw }

// Field returns the gjson result for a top-level field.
func (d *Doc) Field(name string) gjson.Result { return d.root.Get(name) }

// RequireFields checks that every named field is present. Only presence is
// checked here; value types are the concern of RequireArrays, RequireID, and
// the runtime converters.
func (d *Doc) RequireFields(entity string, fields ...string) error {
	for _, f := range fields {
		if !d.root.Get(f).Exists() {
			return MissingField(entity, f)
		}
	}
	return nil
}

// RequireID checks that the id field is a non-empty JSON string.
func (d *Doc) RequireID(entity string) error {
	id := d.root.Get("id")
	if id.Type != gjson.String || id.Str == "" {
		return EmptyID(entity)
	}
	return nil
}

// RequireArrays checks that every named field, if present, is a JSON array.
func (d *Doc) RequireArrays(entity string, fields ...string) error {
	for _, f := range fields {
		v := d.root.Get(f)
		if v.Exists() && !v.IsArray() {
			return NotArray(entity, f)
		}
	}
	return nil
}

// ValidateIndex runs the structural checks for an index document, in order:
// the document must be an object, listField must be an array, total must be
// a number, and objectField (when non-empty) must be an object. The list's
// contents are deliberately not checked; bad entries fail per-entry during
// batch loading.
func ValidateIndex(root gjson.Result, listField, objectField string) error {
	if !root.IsObject() {
		return errors.New("Index data must be an object")
	}
	if !root.Get(listField).IsArray() {
		return errors.New("Index data must have " + listField + " array")
	}
	if root.Get("total").Type != gjson.Number {
		return errors.New("Index data must have total number")
	}
	if objectField != "" && !root.Get(objectField).IsObject() {
		return errors.New("Index data must have " + objectField + " object")
	}
	return nil
}
