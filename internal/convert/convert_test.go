package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/jaja/commander/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo_Scalars(t *testing.T) {
	s, err := To[string]("provolone")
	require.NoError(t, err)
	assert.Equal(t, "provolone", s)

	i, err := To[int]("11")
	require.NoError(t, err)
	assert.Equal(t, 11, i)

	i8, err := To[int8]("-12")
	require.NoError(t, err)
	assert.Equal(t, int8(-12), i8)

	u, err := To[uint16]("65535")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), u)

	f, err := To[float64]("3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	b, err := To[bool]("true")
	require.NoError(t, err)
	assert.True(t, b)

	c, err := To[complex128]("1+2i")
	require.NoError(t, err)
	assert.Equal(t, complex(1, 2), c)

	d, err := To[time.Duration]("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestTo_Time(t *testing.T) {
	v, err := To[time.Time]("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, v.Year())
	assert.Equal(t, time.March, v.Month())
	assert.Equal(t, 1, v.Day())

	_, err = To[time.Time]("not a date")
	assert.True(t, errors.Is(err, errs.ErrParseTime))
}

func TestTo_Lists(t *testing.T) {
	ints, err := To[[]int]("3,4,6")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 6}, ints)

	strs, err := To[[]string]("a|b c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, strs)

	durations, err := To[[]time.Duration]("1s,2m")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Minute}, durations)

	_, err = To[[]int]("3,oo,6")
	assert.True(t, errors.Is(err, errs.ErrParseInt))
	assert.Contains(t, err.Error(), "'oo'")
}

func TestTo_Errors(t *testing.T) {
	tests := []struct {
		name string
		conv func() error
		want error
	}{
		{"int", func() error { _, err := To[int]("eleven"); return err }, errs.ErrParseInt},
		{"int overflow", func() error { _, err := To[int8]("300"); return err }, errs.ErrParseOverflow},
		{"uint negative", func() error { _, err := To[uint]("-1"); return err }, errs.ErrParseUint},
		{"float", func() error { _, err := To[float32]("x"); return err }, errs.ErrParseFloat},
		{"bool", func() error { _, err := To[bool]("maybe"); return err }, errs.ErrParseBool},
		{"complex", func() error { _, err := To[complex64]("i+"); return err }, errs.ErrParseComplex},
		{"duration", func() error { _, err := To[time.Duration]("soon"); return err }, errs.ErrParseDuration},
		{"unsupported", func() error { _, err := To[struct{}]("x"); return err }, errs.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conv()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports[string]())
	assert.True(t, Supports[[]int]())
	assert.True(t, Supports[time.Time]())
	assert.False(t, Supports[struct{}]())
	assert.False(t, Supports[map[string]string]())
}

func TestString_CustomDelimiter(t *testing.T) {
	var v []int
	err := String("1;2;3", &v, func(r rune) bool { return r == ';' })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)
}
