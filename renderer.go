package commander

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	// DefaultIndent precedes every option and command line
	DefaultIndent = 3
	// DefaultGap separates the longest name in a section from its description
	DefaultGap = 5
	// minWrap is the narrowest description column wrapping will produce
	minWrap = 20
)

// Renderer formats help text. Columns are aligned independently in the Options and
// Commands sections.
type Renderer struct {
	indent int
	gap    int
	width  int
	color  bool
}

// NewRenderer creates a Renderer with the default layout and no wrapping
func NewRenderer() *Renderer {
	return &Renderer{
		indent: DefaultIndent,
		gap:    DefaultGap,
	}
}

type row struct {
	name        string
	description string
}

// Render lays out the help of c:
//
//	name
//	version
//	description
//
//	Options:
//	   -s, --long     description
//
//	Commands:
//	   name     description
//
// Commands is left out when there are no sub-commands. The text has no trailing newline.
func (r *Renderer) Render(c *Commander) string {
	lines := []string{c.path, c.version, c.description, ""}

	options := make([]row, 0, c.options.Len())
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		e := pair.Value
		options = append(options, row{
			name:        fmt.Sprintf("-%c, --%s", e.short, e.long),
			description: e.opt.descriptor().Description,
		})
	}

	commands := make([]row, 0, c.commands.Len())
	for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
		commands = append(commands, row{name: pair.Key, description: pair.Value.description})
	}

	lines = append(lines, r.header("Options:"))
	lines = append(lines, r.section(options)...)
	if len(commands) > 0 {
		lines = append(lines, "", r.header("Commands:"))
		lines = append(lines, r.section(commands)...)
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) header(title string) string {
	if !r.color {
		return title
	}

	bold := color.New(color.Bold)
	bold.EnableColor()

	return bold.Sprint(title)
}

func (r *Renderer) section(rows []row) []string {
	longest := 0
	for _, rw := range rows {
		if n := utf8.RuneCountInString(rw.name); n > longest {
			longest = n
		}
	}

	column := r.indent + longest + r.gap
	lines := make([]string, 0, len(rows))
	for _, rw := range rows {
		prefix := strings.Repeat(" ", r.indent) + rw.name +
			strings.Repeat(" ", longest-utf8.RuneCountInString(rw.name)+r.gap)
		for i, part := range r.wrap(rw.description, column) {
			if i > 0 {
				prefix = strings.Repeat(" ", column)
			}
			lines = append(lines, strings.TrimRight(prefix+part, " "))
		}
	}

	return lines
}

// wrap splits text into lines fitting between column and the configured width
func (r *Renderer) wrap(text string, column int) []string {
	if r.width <= 0 || column+utf8.RuneCountInString(text) <= r.width {
		return []string{text}
	}

	limit := r.width - column
	if limit < minWrap {
		limit = minWrap
	}

	var (
		lines   []string
		current strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 || len(lines) == 0 {
		lines = append(lines, current.String())
	}

	return lines
}
