package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewParsingError("bad document", ErrInvalidJSON)
	assert.Equal(t, "parsing: bad document: invalid JSON format", err.Error())

	bare := NewInputError("no file", nil)
	assert.Equal(t, "input: no file", bare.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("disk on fire")
	err := NewOutputError("write failed", inner)
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestAppError_IsMatchesOnType(t *testing.T) {
	parseErr := NewParsingError("first", nil)
	assert.ErrorIs(t, parseErr, &AppError{Type: ErrorTypeParsing})
	assert.NotErrorIs(t, parseErr, &AppError{Type: ErrorTypeOutput})
}

func TestAppError_WrapsSentinels(t *testing.T) {
	err := NewParsingError("empty", ErrEmptyInput)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotErrorIs(t, err, ErrInvalidJSON)
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewInputError("missing file", nil), "Input error: missing file"},
		{NewParsingError("line 3", nil), "JSON parsing error: line 3"},
		{NewInferError("bad tree", nil), "Type inference error: bad tree"},
		{NewRenderError("sink closed", nil), "Render error: sink closed"},
		{NewOutputError("disk full", nil), "Output error: disk full"},
		{ErrEmptyInput, "Error: The input is empty. Please provide valid JSON data."},
		{ErrInvalidJSON, "Error: The input contains invalid JSON. Please check your JSON syntax."},
		{ErrMultipleJSON, "Error: Multiple JSON values found. Please provide a single JSON document."},
		{ErrFileNotFound, "Error: The specified file could not be found. Please check the file path."},
		{ErrNoInput, "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."},
		{fmt.Errorf("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UserFriendlyError(tt.err))
	}
}
