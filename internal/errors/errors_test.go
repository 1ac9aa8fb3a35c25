package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := MissingSource("band.csv")
	wrapped := Wrap(base, "loading beta")

	assert.Equal(t, CodeMissingSource, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
	assert.Equal(t, "loading beta: file band.csv not found", wrapped.Error())
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("boom"), "step %d", 2)

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "step 2: boom", wrapped.Error())
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestGetCodeThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", EmptySource("x.csv", "no data to load"))

	assert.True(t, IsAppError(err))
	assert.True(t, HasCode(err, CodeEmptySource))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestWithCode(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := WithCode(CodeRenderFailed, cause)

	assert.Equal(t, CodeRenderFailed, GetCode(err))
	assert.Equal(t, "disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, WithCode(CodeInvalidInput, nil))
}

func TestWithCodeRecodesAppError(t *testing.T) {
	err := WithCode(CodeInvalidInput, MalformedSource("x.csv", fmt.Errorf("bad")))

	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "could not read x.csv: bad", err.Error())
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("--alpha must be in (0, 1)")

	assert.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidInput, err.Code)
	assert.Equal(t, "--alpha must be in (0, 1)", err.Error())
}

func TestMalformedSourceUnwraps(t *testing.T) {
	cause := fmt.Errorf("bad number")
	err := MalformedSource("gamma.csv", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "could not read gamma.csv")
}
