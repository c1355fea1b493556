package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPrecondition, "working directory mismatch")
	assert.Equal(t, "[PRECONDITION] working directory mismatch", err.Error())
	assert.Equal(t, ErrPrecondition, GetErrorCode(err))
}

func TestNewf(t *testing.T) {
	err := Newf(ErrSymlinkCreate, "cannot link %s", "/tmp/a")
	assert.Contains(t, err.Error(), "cannot link /tmp/a")
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, ErrRemoveFailed, "cannot remove target")

	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, IsErrorCode(err, ErrRemoveFailed))
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should %s", "vanish"))
}

func TestIs_MatchesOnCode(t *testing.T) {
	a := New(ErrConfigLoad, "one")
	b := New(ErrConfigLoad, "another")
	c := New(ErrConfigParse, "different code")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestIsErrorCode_ThroughWrapping(t *testing.T) {
	inner := New(ErrSymlinkCreate, "link failed")
	outer := fmt.Errorf("install: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrSymlinkCreate))
	assert.False(t, IsErrorCode(outer, ErrRemoveFailed))
}

func TestGetErrorCode_UnknownForPlainErrors(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPrecondition, "mismatch").
		WithDetail("workingDir", "/somewhere").
		WithDetail("sourceRoot", "/elsewhere")

	require.NotNil(t, err.Details)
	assert.Equal(t, "/somewhere", err.Details["workingDir"])
	assert.Equal(t, "/elsewhere", err.Details["sourceRoot"])
}
