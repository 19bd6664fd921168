// Package parse turns raw command-line arguments into classified tokens.
package parse

import "unicode/utf8"

// Kind classifies a raw argument
type Kind int

const (
	Argument  Kind = iota // Argument is a positional token or an option value
	ShortOpt              // ShortOpt is a single short option such as -f
	LongOpt               // LongOpt is a long option such as --foo
	ShortOpts             // ShortOpts is a bundle of short options such as -bz
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case ShortOpt:
		return "short option"
	case LongOpt:
		return "long option"
	case ShortOpts:
		return "short option bundle"
	case Argument:
		fallthrough
	default:
		return "argument"
	}
}

// IsOption returns true for every flag-shaped kind
func (k Kind) IsOption() bool {
	return k != Argument
}

// Token is a raw argument together with its classification
type Token struct {
	Text string
	Kind Kind
}

// Name returns the option name carried by the token: the text after "--" for a
// long option, the runes after "-" for short options and bundles, and the
// full text for an argument.
func (t Token) Name() string {
	switch t.Kind {
	case LongOpt:
		return t.Text[2:]
	case ShortOpt, ShortOpts:
		return t.Text[1:]
	}

	return t.Text
}

// Classify determines the Kind of a single raw argument. Lengths are measured
// in runes. A two-rune dash token is always a ShortOpt, never a bundle.
func Classify(arg string) Kind {
	n := utf8.RuneCountInString(arg)
	switch {
	case n == 2 && arg[0] == '-' && arg[1] != '-':
		return ShortOpt
	case n >= 2 && arg[0] == '-' && arg[1] == '-':
		return LongOpt
	case n > 2 && arg[0] == '-' && arg[1] != '-':
		return ShortOpts
	}

	return Argument
}

// Tokenize classifies every raw argument, preserving order
func Tokenize(args []string) []Token {
	tokens := make([]Token, len(args))
	for i, arg := range args {
		tokens[i] = Token{Text: arg, Kind: Classify(arg)}
	}

	return tokens
}
