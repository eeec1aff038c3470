package content_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/zork-content/internal/content"
)

func TestIndexError_Message(t *testing.T) {
	err := &content.IndexError{Vertical: "item", Err: errors.New("Index data must have items array")}
	assert.Equal(t, "Failed to load item index: Index data must have items array", err.Error())
}

func TestFileError_WrapsCause(t *testing.T) {
	cause := os.ErrNotExist
	err := &content.FileError{Vertical: "monster", File: "thief.json", Err: cause}

	assert.Contains(t, err.Error(), "Failed to load monster from thief.json")
	assert.Contains(t, err.Error(), cause.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidationError_Messages(t *testing.T) {
	assert.Equal(t, "Item data missing required field: name",
		content.MissingField("Item", "name").Error())
	assert.Equal(t, "Monster ID must be a non-empty string",
		content.EmptyID("Monster").Error())
	assert.Equal(t, "Scene tags must be an array",
		content.NotArray("Scene", "tags").Error())
}

func TestConversionError_Message(t *testing.T) {
	err := &content.ConversionError{What: "item type", Value: "INVALID_TYPE"}
	assert.Equal(t, "Invalid item type: INVALID_TYPE", err.Error())
}

func TestNotFoundError_Message(t *testing.T) {
	err := &content.NotFoundError{Entity: "Item", ID: "missing"}
	assert.Equal(t, "Item with ID 'missing' not found", err.Error())
}

func TestFileError_ValidationCauseSurvivesWrapping(t *testing.T) {
	inner := content.MissingField("Item", "weight")
	wrapped := &content.FileError{Vertical: "item", File: "lamp.json", Err: inner}

	var ve *content.ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "weight", ve.Field)
}
