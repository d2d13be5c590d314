package errors

import (
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := ConfigInvalid("REPORT_WORKERS must be positive")
	err := Wrap(base, "configuration validation failed")

	assert.Equal(t, CodeConfigInvalid, GetCode(err))
	assert.Equal(t, "configuration validation failed: REPORT_WORKERS must be positive", err.Error())
	assert.True(t, stderrors.Is(err, base))
}

func TestWrapForeignError(t *testing.T) {
	err := Wrapf(io.ErrUnexpectedEOF, "reading %s", "data.csv")
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestWithCodeAndConstructors(t *testing.T) {
	err := WithCode(CodeInvalidInput, io.EOF)
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "EOF", err.Error())
	assert.True(t, stderrors.Is(err, io.EOF))
	assert.Equal(t, CodeUnknown, GetCode(io.EOF))
	assert.Nil(t, WithCode(CodeNotFound, nil))

	recoded := WithCode(CodeNotFound, InvalidInput("missing column"))
	assert.Equal(t, CodeNotFound, GetCode(recoded))
	assert.Equal(t, "missing column", recoded.Error())

	imp := ImportFailed("data.xlsx", io.EOF)
	assert.Equal(t, CodeImportFailed, imp.Code)
	assert.Contains(t, imp.Error(), "data.xlsx")

	unsup := UnsupportedOperation("cleaning step \"pivot\"", nil)
	assert.Equal(t, CodeUnsupportedOperation, GetCode(unsup))
	assert.Equal(t, "unsupported cleaning step \"pivot\"", unsup.Error())
}
