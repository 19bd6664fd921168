// Package convert provides the default string to value coercion used by
// options which do not supply their own.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jaja/commander/errs"
)

// ListDelimiterFunc reports whether r separates the elements of a list value
type ListDelimiterFunc func(r rune) bool

// DefaultListDelimiter splits list values on ',', '|' and ' '
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// To converts value to T using the default coercion rules
func To[T any](value string) (T, error) {
	var v T
	err := String(value, &v, DefaultListDelimiter)

	return v, err
}

// Supports returns true when T can be produced by To
func Supports[T any]() bool {
	var v T
	return CanConvert(&v)
}

// String parses value into the variable data points to. List types are split
// with delimiterFunc before each element is converted.
func String(value string, data any, delimiterFunc ListDelimiterFunc) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delimiterFunc)
	case *bool:
		return into(t, value, parseBool)
	case *[]bool:
		return intoList(t, value, delimiterFunc, parseBool)
	case *int:
		return into(t, value, parseInt[int](strconv.IntSize))
	case *[]int:
		return intoList(t, value, delimiterFunc, parseInt[int](strconv.IntSize))
	case *int64:
		return into(t, value, parseInt[int64](64))
	case *[]int64:
		return intoList(t, value, delimiterFunc, parseInt[int64](64))
	case *int32:
		return into(t, value, parseInt[int32](32))
	case *[]int32:
		return intoList(t, value, delimiterFunc, parseInt[int32](32))
	case *int16:
		return into(t, value, parseInt[int16](16))
	case *[]int16:
		return intoList(t, value, delimiterFunc, parseInt[int16](16))
	case *int8:
		return into(t, value, parseInt[int8](8))
	case *[]int8:
		return intoList(t, value, delimiterFunc, parseInt[int8](8))
	case *uint:
		return into(t, value, parseUint[uint](strconv.IntSize))
	case *[]uint:
		return intoList(t, value, delimiterFunc, parseUint[uint](strconv.IntSize))
	case *uint64:
		return into(t, value, parseUint[uint64](64))
	case *[]uint64:
		return intoList(t, value, delimiterFunc, parseUint[uint64](64))
	case *uint32:
		return into(t, value, parseUint[uint32](32))
	case *[]uint32:
		return intoList(t, value, delimiterFunc, parseUint[uint32](32))
	case *uint16:
		return into(t, value, parseUint[uint16](16))
	case *[]uint16:
		return intoList(t, value, delimiterFunc, parseUint[uint16](16))
	case *uint8:
		return into(t, value, parseUint[uint8](8))
	case *[]uint8:
		return intoList(t, value, delimiterFunc, parseUint[uint8](8))
	case *float64:
		return into(t, value, parseFloat[float64](64))
	case *[]float64:
		return intoList(t, value, delimiterFunc, parseFloat[float64](64))
	case *float32:
		return into(t, value, parseFloat[float32](32))
	case *[]float32:
		return intoList(t, value, delimiterFunc, parseFloat[float32](32))
	case *complex128:
		return into(t, value, parseComplex[complex128](128))
	case *complex64:
		return into(t, value, parseComplex[complex64](64))
	case *time.Duration:
		return into(t, value, parseDuration)
	case *[]time.Duration:
		return intoList(t, value, delimiterFunc, parseDuration)
	case *time.Time:
		return into(t, value, parseTime)
	case *[]time.Time:
		// dates may contain spaces, so only ',' separates elements here
		return intoList(t, value, func(r rune) bool { return r == ',' }, parseTime)
	default:
		return errs.ErrUnsupportedType.WithArgs("value", typeName(data))
	}

	return nil
}

// CanConvert returns true when String accepts data
func CanConvert(data any) bool {
	switch data.(type) {
	case *string, *[]string,
		*bool, *[]bool,
		*int, *[]int, *int64, *[]int64, *int32, *[]int32, *int16, *[]int16, *int8, *[]int8,
		*uint, *[]uint, *uint64, *[]uint64, *uint32, *[]uint32, *uint16, *[]uint16, *uint8, *[]uint8,
		*float64, *[]float64, *float32, *[]float32,
		*complex128, *complex64,
		*time.Duration, *[]time.Duration,
		*time.Time, *[]time.Time:
		return true
	}

	return false
}

func into[T any](dst *T, value string, parse func(string) (T, error)) error {
	v, err := parse(value)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

func intoList[T any](dst *[]T, value string, delimiterFunc ListDelimiterFunc, parse func(string) (T, error)) error {
	fields := strings.FieldsFunc(value, delimiterFunc)
	temp := make([]T, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return err
		}
		temp[i] = v
	}
	*dst = temp

	return nil
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(s)
	}

	return v, nil
}

func parseInt[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, errs.ErrParseOverflow.WithArgs(s)
			}
			return 0, errs.ErrParseInt.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseUint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, errs.ErrParseOverflow.WithArgs(s)
			}
			return 0, errs.ErrParseUint.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseFloat[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, errs.ErrParseOverflow.WithArgs(s)
			}
			return 0, errs.ErrParseFloat.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseComplex[T ~complex64 | ~complex128](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseComplex(s, bits)
		if err != nil {
			return 0, errs.ErrParseComplex.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseDuration(s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, errs.ErrParseDuration.WithArgs(s)
	}

	return v, nil
}

func parseTime(s string) (time.Time, error) {
	v, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(s).Wrap(err)
	}

	return v, nil
}

func typeName(data any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", data), "*")
}
