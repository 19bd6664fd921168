package commander

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jaja/commander/errs"
	"github.com/jaja/commander/internal/parse"
)

type keyedOption struct {
	key string
	opt Option
}

// entry is a registered option with its resolved names
type entry struct {
	key   string
	short rune
	long  string
	opt   Option
}

func (c *Commander) buildRegistry() error {
	entries := make([]*entry, 0, len(c.pending)+1)
	keys := make(map[string]struct{}, len(c.pending))
	owners := make(map[Option]string, len(c.pending))

	for _, ko := range c.pending {
		if ko.key == "" {
			return errs.ErrEmptyKey
		}
		if ko.opt == nil || ko.opt.isNil() {
			return errs.ErrNilOption.WithArgs(ko.key)
		}
		if _, found := keys[ko.key]; found {
			return errs.ErrDuplicateKey.WithArgs(ko.key)
		}
		if owner, found := owners[ko.opt]; found {
			return errs.ErrDuplicateOption.WithArgs(ko.key, owner)
		}
		if err := ko.opt.validate(ko.key); err != nil {
			return err
		}
		keys[ko.key] = struct{}{}
		owners[ko.opt] = ko.key

		d := ko.opt.descriptor()
		e := &entry{key: ko.key, short: d.Short, long: d.Long, opt: ko.opt}
		if e.short == 0 {
			r, _ := utf8.DecodeRuneInString(ko.key)
			e.short = unicode.ToLower(r)
		}
		if e.long == "" {
			e.long = c.flagNameConverter(ko.key)
		}
		entries = append(entries, e)
	}
	c.pending = nil

	var help *entry
	if !hasName(entries, helpShort, helpLong) {
		key := helpKey
		for _, taken := keys[key]; taken; _, taken = keys[key] {
			key = "_" + key
		}
		help = &entry{
			key:   key,
			short: helpShort,
			long:  helpLong,
			opt:   NewFlag(WithDescription(helpDescription)),
		}
		entries = append(entries, help)
	}

	if short, found := firstDuplicate(entries, func(e *entry) rune { return e.short }); found {
		return errs.ErrDuplicateShortName.WithArgs(short)
	}
	if long, found := firstDuplicate(entries, func(e *entry) string { return e.long }); found {
		return errs.ErrDuplicateLongName.WithArgs(long)
	}

	for _, e := range entries {
		if _, present := c.options.Set(e.key, e); present {
			return errs.ErrDuplicateKey.WithArgs(e.key)
		}
		c.byShort[e.short] = e
		c.byLong[e.long] = e
		c.byOption[e.opt] = e
		if _, isFlag := e.opt.(*Flag); isFlag && e.long == helpLong && help == nil {
			help = e
		}
		c.logger.Debug("registered option", "command", c.path, "key", e.key,
			"short", string(e.short), "long", e.long, "takesValue", e.opt.takesValue())
	}
	c.help = help

	return nil
}

// firstDuplicate groups entries by name in order of first appearance and returns the
// name of the first group holding more than one entry
func firstDuplicate[K comparable](entries []*entry, name func(*entry) K) (K, bool) {
	counts := make(map[K]int, len(entries))
	order := make([]K, 0, len(entries))
	for _, e := range entries {
		k := name(e)
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	for _, k := range order {
		if counts[k] > 1 {
			return k, true
		}
	}

	var zero K
	return zero, false
}

func hasName(entries []*entry, short rune, long string) bool {
	for _, e := range entries {
		if e.short == short || e.long == long {
			return true
		}
	}

	return false
}

// bind walks the tokens left to right. Value options consume the following token, which
// must be an argument. Once the first positional argument is seen every remaining token
// must be positional too.
func (c *Commander) bind(state *parse.State, st *parseState) error {
	positional := false
	for tok, ok := state.Advance(); ok; tok, ok = state.Advance() {
		if positional {
			if tok.Kind.IsOption() {
				return errs.ErrOptionAfterArguments.WithArgs(tok.Text)
			}
			st.args = append(st.args, tok.Text)
			continue
		}

		switch tok.Kind {
		case parse.LongOpt:
			e, found := c.byLong[tok.Name()]
			if !found {
				return errs.ErrUnknownOption.WithArgs(tok.Text)
			}
			if err := c.bindOption(state, st, e, tok.Text); err != nil {
				return err
			}
		case parse.ShortOpt:
			r, _ := utf8.DecodeRuneInString(tok.Name())
			e, found := c.byShort[r]
			if !found {
				return errs.ErrUnknownOption.WithArgs(tok.Text)
			}
			if err := c.bindOption(state, st, e, tok.Text); err != nil {
				return err
			}
		case parse.ShortOpts:
			if err := c.bindBundle(st, tok); err != nil {
				return err
			}
		case parse.Argument:
			positional = true
			st.args = append(st.args, tok.Text)
		}
	}

	return nil
}

func (c *Commander) bindOption(state *parse.State, st *parseState, e *entry, text string) error {
	if !e.opt.takesValue() {
		return st.define(e, true)
	}

	next, ok := state.Peek()
	if !ok || next.Kind != parse.Argument {
		return errs.ErrMissingArgument.WithArgs(text)
	}
	state.Advance()
	if st.isDefined(e) {
		return errs.ErrDefinedTwice.WithArgs(e.long)
	}

	value, err := e.opt.coerce(next.Text)
	if err != nil {
		return errs.ErrCoercion.WithArgs(next.Text, e.long).Wrap(err)
	}

	return st.define(e, value)
}

// bindBundle expands -bz into -b -z. A bundle cannot carry values, so every rune must
// resolve to a Flag.
func (c *Commander) bindBundle(st *parseState, tok parse.Token) error {
	for _, r := range tok.Name() {
		flag := "-" + string(r)
		e, found := c.byShort[r]
		if !found {
			return errs.ErrUnknownOption.WithArgs(flag)
		}
		if e.opt.takesValue() {
			return errs.ErrMissingArgument.WithArgs(flag)
		}
		if err := st.define(e, true); err != nil {
			return err
		}
	}

	return nil
}

func (c *Commander) validateRequired(st *parseState) error {
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		if !isOptional(e.opt) && !st.isDefined(e) {
			return errs.ErrMissingRequired.WithArgs(e.long)
		}
	}

	return nil
}

// parseState holds what a single Parse call bound; the registry itself is never written to
type parseState struct {
	c       *Commander
	defined map[*entry]any
	args    []string
}

func newParseState(c *Commander) *parseState {
	return &parseState{
		c:       c,
		defined: make(map[*entry]any, c.options.Len()),
		args:    []string{},
	}
}

func (st *parseState) define(e *entry, value any) error {
	if _, found := st.defined[e]; found {
		return errs.ErrDefinedTwice.WithArgs(e.long)
	}
	st.defined[e] = value
	st.c.logger.Debug("bound option", "command", st.c.path, "option", e.long)

	return nil
}

func (st *parseState) isDefined(e *entry) bool {
	_, found := st.defined[e]
	return found
}

func (st *parseState) result() *Result {
	res := &Result{
		command: st.c.path,
		args:    st.args,
		values:  make(map[Option]*binding, st.c.options.Len()),
		byLong:  make(map[string]*binding, st.c.options.Len()),
	}

	for pair := st.c.options.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		b := &binding{value: e.opt.defaultValue()}
		if v, found := st.defined[e]; found {
			b.defined = true
			b.value = v
		}
		res.values[e.opt] = b
		res.byLong[e.long] = b
	}

	return res
}

func joinPath(parent, name string) string {
	return strings.TrimSpace(parent + " " + name)
}
