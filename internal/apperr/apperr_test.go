package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/elapsed/internal/apperr"
)

var (
	errTemplate = &apperr.Error{Message: "activity %q not found"}
	errOther    = &apperr.Error{Message: "something else"}
)

func TestFmtMatchesTemplate(t *testing.T) {
	err := errTemplate.Fmt("Running")

	assert.Equal(t, `activity "Running" not found`, err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, errOther)
}

func TestWrapKeepsCause(t *testing.T) {
	err := errOther.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "something else: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, errOther)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWrapAfterFmt(t *testing.T) {
	err := errTemplate.Fmt("Reading").Wrap(io.EOF)

	assert.ErrorIs(t, err, errTemplate)
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, `activity "Reading" not found: EOF`, err.Error())
}
