package errs

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_WithArgs(t *testing.T) {
	err := ErrUnknownOption.WithArgs("--pepper")

	assert.Equal(t, "unknown option '--pepper'", err.Error())
	assert.Equal(t, []interface{}{"--pepper"}, err.Args())
	assert.Equal(t, "unknown option '%s'", ErrUnknownOption.Error(), "sentinel must not be modified")
}

func TestError_Is(t *testing.T) {
	err := ErrDefinedTwice.WithArgs("bar")

	assert.True(t, errors.Is(err, ErrDefinedTwice))
	assert.False(t, errors.Is(err, ErrMissingArgument))
	assert.False(t, errors.Is(err, errors.New("option 'bar' is defined twice")))

	wrapped := fmt.Errorf("parsing: %w", err)
	assert.True(t, errors.Is(wrapped, ErrDefinedTwice), "sentinel should be found through fmt wrapping")
}

func TestError_Wrap(t *testing.T) {
	_, cause := strconv.Atoi("oo")
	err := ErrCoercion.WithArgs("3,oo,6", "cheese").Wrap(cause)

	assert.True(t, errors.Is(err, ErrCoercion))
	assert.True(t, errors.Is(err, strconv.ErrSyntax), "cause should stay reachable")
	assert.Contains(t, err.Error(), "invalid value '3,oo,6' for option 'cheese': ")

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "oo", numErr.Num)
}

func TestError_As(t *testing.T) {
	var err error = ErrMissingRequired.WithArgs("size")

	var cmdErr *Error
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, []interface{}{"size"}, cmdErr.Args())
}

func TestError_NestedWrap(t *testing.T) {
	inner := ErrParseInt.WithArgs("oo")
	outer := ErrCommandCallback.WithArgs("setup").Wrap(inner)

	assert.True(t, errors.Is(outer, ErrCommandCallback))
	assert.True(t, errors.Is(outer, ErrParseInt))
	assert.Equal(t, "command 'setup' failed: 'oo' is not an integer", outer.Error())
}
