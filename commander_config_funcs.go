package commander

import (
	"log/slog"
	"os"
	"reflect"

	"github.com/jaja/commander/errs"
	"golang.org/x/term"
)

// WithOption registers opt under key. The key identifies the option internally and provides the default
// short name (its lower-cased first letter) and long name (the key passed through the flag name converter).
// Options are listed in help in registration order.
func WithOption(key string, opt Option) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		c.pending = append(c.pending, keyedOption{key: key, opt: opt})
	}
}

// WithOptionsFrom registers every exported field of container whose type is an Option, in declaration
// order, using the field name as key. container must be a struct or a pointer to one:
//
//	opts := struct {
//		NoCheese  *commander.Flag
//		Size      *commander.Opt[string]
//	}{
//		NoCheese: commander.NewFlag(commander.WithShortName('c')),
//		Size:     commander.NewOpt[string](commander.IsRequired()),
//	}
//	cmd, err := commander.New("pizza", "", commander.WithOptionsFrom(&opts))
func WithOptionsFrom(container any) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		*err = c.addOptionsFrom(container)
	}
}

// WithVersion sets the text printed on the second line of help
func WithVersion(version string) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		c.version = version
	}
}

// WithWriteLine replaces the sink help text is written to. Defaults to DefaultWriteLine. Sub-commands
// added afterwards inherit the sink.
func WithWriteLine(writeLine WriteLineFunc) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		if writeLine != nil {
			c.writeLine = writeLine
		}
	}
}

// WithLogger sets the logger receiving debug records about registration, dispatch and binding. By
// default nothing is logged.
func WithLogger(logger *slog.Logger) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFlagNameConverter sets the function deriving default long names from option keys. See ToKebabCase,
// ToSnakeCase, ToLowerCamel and ToLowerCase. Defaults to LowerFirst.
func WithFlagNameConverter(converter NameConversionFunc) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		if converter != nil {
			c.flagNameConverter = converter
		}
	}
}

// WithCallback sets the function called with the bound Result after a successful Parse
func WithCallback(callback CommandFunc) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		c.callback = callback
	}
}

// WithColor renders help section headers in bold
func WithColor(enabled bool) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		c.renderer.color = enabled
	}
}

// WithWrapWidth wraps option and command descriptions so help lines stay within width columns. A width of
// 0 disables wrapping.
func WithWrapWidth(width int) ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		if width >= 0 {
			c.renderer.width = width
		}
	}
}

// WithTerminalWrap wraps help to the width of the terminal attached to standard output. It has no effect
// when standard output is not a terminal.
func WithTerminalWrap() ConfigureCommanderFunc {
	return func(c *Commander, err *error) {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return
		}
		if width, _, sizeErr := term.GetSize(fd); sizeErr == nil {
			c.renderer.width = width
		}
	}
}

var optionType = reflect.TypeOf((*Option)(nil)).Elem()

func (c *Commander) addOptionsFrom(container any) error {
	v := reflect.ValueOf(container)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return errs.ErrInvalidContainer.WithArgs(v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errs.ErrInvalidContainer.WithArgs(reflect.TypeOf(container))
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || !field.Type.Implements(optionType) {
			continue
		}
		opt, _ := v.Field(i).Interface().(Option)
		c.pending = append(c.pending, keyedOption{key: field.Name, opt: opt})
	}

	return nil
}
