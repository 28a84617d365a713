// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "bundle_not_found",
			code:    errors.ErrBundleNotFound,
			message: "no such bundle",
			wantStr: "[BUNDLE_NOT_FOUND] no such bundle",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "bad ordinal",
			wantStr: "[INVALID_INPUT] bad ordinal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownCommand, "unknown command %q", "frob")
	assert.Equal(t, `[UNKNOWN_COMMAND] unknown command "frob"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil_error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "write"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileWrite, "write %s", "x"))
	})

	t.Run("wraps_cause", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrPermission, errors.ErrFileWrite, "cannot write %s", "a.mdc")
		require.NotNil(t, err)

		assert.Equal(t, "[FILE_WRITE] cannot write a.mdc: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, fs.ErrPermission))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDirCreate, "mkdir").
		WithDetail("path", ".cursor/rules").
		WithDetail("mode", 0755)

	assert.Equal(t, ".cursor/rules", err.Details["path"])
	assert.Equal(t, 0755, err.Details["mode"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrFileRead, "a")
	b := errors.New(errors.ErrFileRead, "b")
	c := errors.New(errors.ErrFileWrite, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
	assert.False(t, stderrors.Is(a, fs.ErrNotExist))
}

func TestIsErrorCode(t *testing.T) {
	base := errors.New(errors.ErrConfigParse, "bad toml")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.True(t, errors.IsErrorCode(base, errors.ErrConfigParse))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrConfigParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDirCreate, errors.GetErrorCode(errors.New(errors.ErrDirCreate, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	root := fs.ErrNotExist
	inner := errors.Wrap(root, errors.ErrFileRead, "read source")
	outer := errors.Wrap(inner, errors.ErrInternal, "install")

	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(outer))
	// IsErrorCode only inspects the outermost coded error; errors.Is walks the chain.
	assert.False(t, errors.IsErrorCode(outer, errors.ErrFileRead))
	assert.True(t, stderrors.Is(outer, errors.New(errors.ErrFileRead, "")))
	assert.True(t, stderrors.Is(outer, fs.ErrNotExist))
}
