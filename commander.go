// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package commander provides support for command-line processing.
//
// Options are declared as descriptors and registered with a Commander:
//
//	Flag   - a boolean option which takes no value (-p, --pepper, or bundled as -pc)
//	Opt[T] - an option followed by a value which is coerced to T (-t 5, --tip 5)
//
// Every token after the first positional argument must itself be positional. Sub-commands
// are selected by the first argument and own an independent set of options.
package commander

import (
	"io"
	"log/slog"

	"github.com/google/shlex"
	"github.com/jaja/commander/errs"
	"github.com/jaja/commander/internal/parse"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Commander holds the validated option registry and sub-commands of one command level
type Commander struct {
	name              string
	path              string
	description       string
	version           string
	pending           []keyedOption
	options           *orderedmap.OrderedMap[string, *entry]
	byShort           map[rune]*entry
	byLong            map[string]*entry
	byOption          map[Option]*entry
	help              *entry
	commands          *orderedmap.OrderedMap[string, *Commander]
	callback          CommandFunc
	writeLine         WriteLineFunc
	logger            *slog.Logger
	flagNameConverter NameConversionFunc
	renderer          *Renderer
}

// New creates a Commander named name. The name and description head the help text. Option
// registration errors - duplicate short or long names, unsupported value types - are reported here.
//
// Configuration example:
//
//	cmd, err := New("pizza-cli", "Order a pizza through command line",
//		WithOption("NoCheese", NewFlag(WithShortName('c'), WithLongName("no-cheese"))),
//		WithOption("Size", NewOpt[string](WithDescription("Choose a size"), IsRequired())),
//		WithOption("Tip", NewOpt[int]().WithDefault(2)))
func New(name, description string, configs ...ConfigureCommanderFunc) (*Commander, error) {
	c := newCommander(name, name, description)

	if err := c.configure(configs...); err != nil {
		return nil, err
	}

	return c, nil
}

// AddCommand registers a sub-command selected when name is the first argument passed to Parse. The
// returned Commander is the sub-command's handle and may be used to register further sub-commands.
// callback may be nil. The sub-command inherits the help sink, logger, name converter and help
// layout of c.
func (c *Commander) AddCommand(name, description string, callback CommandFunc, configs ...ConfigureCommanderFunc) (*Commander, error) {
	if name == "" {
		return nil, errs.ErrEmptyCommandName
	}
	if _, found := c.commands.Get(name); found {
		return nil, errs.ErrDuplicateCommand.WithArgs(name)
	}

	sub := newCommander(name, joinPath(c.path, name), description)
	sub.writeLine = c.writeLine
	sub.logger = c.logger
	sub.flagNameConverter = c.flagNameConverter
	*sub.renderer = *c.renderer
	sub.callback = callback

	if err := sub.configure(configs...); err != nil {
		return nil, err
	}

	c.commands.Set(name, sub)
	c.logger.Debug("registered command", "command", sub.path)

	return sub, nil
}

// Parse binds args - typically os.Args[1:] - to the registered options.
//
// When args[0] names a sub-command, parsing is delegated to it and its Result is returned. When the
// help flag is present, help is written to the configured sink and Parse returns a nil Result and a nil
// error, whether or not required options were supplied. Every other failure is an *errs.Error.
//
// Each call starts from a clean state, so a Commander can be parsed repeatedly.
func (c *Commander) Parse(args []string) (*Result, error) {
	if len(args) > 0 {
		if sub, found := c.commands.Get(args[0]); found {
			c.logger.Debug("dispatching to command", "command", sub.path, "args", len(args)-1)
			return sub.Parse(args[1:])
		}
	}

	st := newParseState(c)
	if err := c.bind(parse.NewState(args), st); err != nil {
		return nil, err
	}

	if c.help != nil && st.isDefined(c.help) {
		c.logger.Debug("help requested", "command", c.path)
		c.writeLine(c.Help())
		return nil, nil
	}

	if err := c.validateRequired(st); err != nil {
		return nil, err
	}

	res := st.result()
	if c.callback != nil {
		if err := c.callback(res); err != nil {
			return nil, errs.ErrCommandCallback.WithArgs(c.path).Wrap(err)
		}
	}

	return res, nil
}

// ParseString splits cmdLine the way a POSIX shell would, honouring quotes, and calls Parse
func (c *Commander) ParseString(cmdLine string) (*Result, error) {
	args, err := shlex.Split(cmdLine)
	if err != nil {
		return nil, errs.ErrInvalidCommandLine.Wrap(err)
	}

	return c.Parse(args)
}

// Help renders the help text of this command level
func (c *Commander) Help() string {
	return c.renderer.Render(c)
}

// Name returns the name the Commander was created with
func (c *Commander) Name() string {
	return c.name
}

// Path returns the space-separated names leading from the root Commander to c
func (c *Commander) Path() string {
	return c.path
}

// Description returns the description shown in help
func (c *Commander) Description() string {
	return c.description
}

// Options lists the registered options, including the implicit help flag, in registration order
func (c *Commander) Options() []OptionInfo {
	infos := make([]OptionInfo, 0, c.options.Len())
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		infos = append(infos, OptionInfo{
			Key:         e.key,
			Short:       e.short,
			Long:        e.long,
			Description: e.opt.descriptor().Description,
			TakesValue:  e.opt.takesValue(),
			Optional:    isOptional(e.opt),
		})
	}

	return infos
}

// Commands lists the registered sub-commands in registration order
func (c *Commander) Commands() []CommandInfo {
	infos := make([]CommandInfo, 0, c.commands.Len())
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		infos = append(infos, CommandInfo{Name: pair.Key, Description: pair.Value.description})
	}

	return infos
}

// Command returns the sub-command registered as name
func (c *Commander) Command(name string) (*Commander, bool) {
	return c.commands.Get(name)
}

func newCommander(name, path, description string) *Commander {
	return &Commander{
		name:              name,
		path:              path,
		description:       description,
		options:           orderedmap.New[string, *entry](),
		byShort:           map[rune]*entry{},
		byLong:            map[string]*entry{},
		byOption:          map[Option]*entry{},
		commands:          orderedmap.New[string, *Commander](),
		writeLine:         DefaultWriteLine,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		flagNameConverter: DefaultFlagNameConverter,
		renderer:          NewRenderer(),
	}
}

func (c *Commander) configure(configs ...ConfigureCommanderFunc) error {
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return errs.ErrConfiguring.WithArgs(c.path).Wrap(err)
		}
	}

	return c.buildRegistry()
}
