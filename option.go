package commander

import (
	"fmt"
	"reflect"

	"github.com/jaja/commander/errs"
	"github.com/jaja/commander/internal/convert"
)

// Descriptor holds the identity and documentation shared by every kind of option.
// A zero Short or empty Long is filled in from the option's key when the option is
// registered; the Descriptor itself is never modified by a Commander.
type Descriptor struct {
	Short       rune
	Long        string
	Description string
	// Required is only honoured by value options (Opt). A required option which is
	// absent from the command line fails Parse.
	Required bool
}

// Option is implemented by *Flag and *Opt[T]
type Option interface {
	descriptor() *Descriptor
	takesValue() bool
	defaultValue() any
	coerce(value string) (any, error)
	validate(key string) error
	isNil() bool
}

// Flag is a boolean presence option which never takes a value, e.g. -p or --pepper
type Flag struct {
	Descriptor
}

// NewFlag creates a presence flag
func NewFlag(configs ...ConfigureOptionFunc) *Flag {
	f := &Flag{}
	for _, config := range configs {
		config(&f.Descriptor)
	}

	return f
}

func (f *Flag) descriptor() *Descriptor {
	return &f.Descriptor
}

func (f *Flag) takesValue() bool {
	return false
}

func (f *Flag) defaultValue() any {
	return false
}

func (f *Flag) coerce(string) (any, error) {
	return true, nil
}

func (f *Flag) validate(string) error {
	return nil
}

func (f *Flag) isNil() bool {
	return f == nil
}

// Opt is an option followed by a value, e.g. -c provolone. The value is produced by
// Coercion, or by the default conversion for the supported primitive types when
// Coercion is nil.
type Opt[T any] struct {
	Descriptor
	Default  T
	Coercion Coercion[T]
}

// NewOpt creates a value option. Options are optional unless configured with
// IsRequired or SetRequired(true).
func NewOpt[T any](configs ...ConfigureOptionFunc) *Opt[T] {
	o := &Opt[T]{}
	for _, config := range configs {
		config(&o.Descriptor)
	}

	return o
}

// WithDefault sets the value reported when the option is absent
func (o *Opt[T]) WithDefault(value T) *Opt[T] {
	o.Default = value

	return o
}

// WithCoercion replaces the default conversion
func (o *Opt[T]) WithCoercion(coercion Coercion[T]) *Opt[T] {
	o.Coercion = coercion

	return o
}

// IsOptional returns true when the option may be omitted
func (o *Opt[T]) IsOptional() bool {
	return !o.Required
}

func (o *Opt[T]) descriptor() *Descriptor {
	return &o.Descriptor
}

func (o *Opt[T]) takesValue() bool {
	return true
}

func (o *Opt[T]) defaultValue() any {
	return o.Default
}

func (o *Opt[T]) coerce(value string) (any, error) {
	if o.Coercion != nil {
		return o.Coercion(value)
	}

	return convert.To[T](value)
}

func (o *Opt[T]) validate(key string) error {
	if o.Coercion == nil && !convert.Supports[T]() {
		return errs.ErrUnsupportedType.WithArgs(key, typeOf[T]())
	}

	return nil
}

func (o *Opt[T]) isNil() bool {
	return o == nil
}

func typeOf[T any]() string {
	return fmt.Sprint(reflect.TypeOf((*T)(nil)).Elem())
}

func isOptional(opt Option) bool {
	return !opt.takesValue() || !opt.descriptor().Required
}
