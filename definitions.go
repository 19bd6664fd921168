package commander

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// ConfigureCommanderFunc is used when defining a Commander or one of its sub-commands
type ConfigureCommanderFunc func(c *Commander, err *error)

// ConfigureOptionFunc is used when defining Flag and Opt descriptors
type ConfigureOptionFunc func(d *Descriptor)

// CommandFunc callback - optionally attached to a Commander, called with the bound Result at the
// end of every successful Parse of that Commander. It is not called when help was printed.
type CommandFunc func(res *Result) error

// WriteLineFunc receives rendered help text
type WriteLineFunc func(text string)

// Coercion converts the raw token following a value option into the option's value
type Coercion[T any] func(value string) (T, error)

// NameConversionFunc converts an option key to its default long name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// LowerFirst lower-cases the first letter "NoCheese" -> "noCheese"
	LowerFirst = func(s string) string {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return s
		}

		return string(unicode.ToLower(r)) + s[size:]
	}

	// ToKebabCase converts a string to kebab case "no-cheese"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "no_cheese"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "noCheese", also lower-casing leading acronyms
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "nocheese"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultFlagNameConverter = LowerFirst
)

// DefaultWriteLine prints text followed by a newline to standard output
func DefaultWriteLine(text string) {
	_, _ = fmt.Fprintln(os.Stdout, text)
}

const (
	helpKey         = "Help"
	helpShort       = 'h'
	helpLong        = "help"
	helpDescription = "prints this help message"
)

// OptionInfo describes a registered option with its resolved names
type OptionInfo struct {
	Key         string
	Short       rune
	Long        string
	Description string
	TakesValue  bool
	Optional    bool
}

// CommandInfo describes a registered sub-command
type CommandInfo struct {
	Name        string
	Description string
}
