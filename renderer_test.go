package commander

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPizzaCli(t *testing.T, configs ...ConfigureCommanderFunc) *Commander {
	t.Helper()
	opts := struct {
		NoCheese  *Flag
		Pepperoni *Flag
		Size      *Opt[string]
		Tip       *Opt[int]
	}{
		NoCheese:  NewFlag(WithShortName('c'), WithLongName("no-cheese"), WithDescription("Don't use any cheese")),
		Pepperoni: NewFlag(WithDescription("Add Pepperoni")),
		Size:      NewOpt[string](WithDescription("Choose a size for the pizza"), IsRequired()),
		Tip:       NewOpt[int](WithDescription("A tip for the delivery guy")),
	}

	cmd, err := New("pizza-cli", "Order a pizza through command line",
		append([]ConfigureCommanderFunc{WithOptionsFrom(&opts)}, configs...)...)
	require.NoError(t, err)

	return cmd
}

func TestRender_Options(t *testing.T) {
	cmd := newPizzaCli(t)

	want := []string{
		"pizza-cli",
		"",
		"Order a pizza through command line",
		"",
		"Options:",
		"   -c, --no-cheese     Don't use any cheese",
		"   -p, --pepperoni     Add Pepperoni",
		"   -s, --size          Choose a size for the pizza",
		"   -t, --tip           A tip for the delivery guy",
		"   -h, --help          prints this help message",
	}

	if diff := cmp.Diff(want, strings.Split(cmd.Help(), "\n")); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Commands(t *testing.T) {
	cmd, err := New("git", "the stupid content tracker")
	require.NoError(t, err)

	commands := []CommandInfo{
		{Name: "init", Description: "Create an empty git repository or reinitialize an existing one"},
		{Name: "add", Description: "Add new or modified files to the staging area"},
		{Name: "rm", Description: "Remove files from the working directory and staging area"},
		{Name: "mv", Description: "Move or rename a file, a directory, or a symlink"},
		{Name: "status", Description: "Show the status of the working directory and staging area"},
		{Name: "commit", Description: "Record changes to the repository"},
	}
	for _, info := range commands {
		_, err := cmd.AddCommand(info.Name, info.Description, nil)
		require.NoError(t, err)
	}

	want := []string{
		"git",
		"",
		"the stupid content tracker",
		"",
		"Options:",
		"   -h, --help     prints this help message",
		"",
		"Commands:",
		"   init       Create an empty git repository or reinitialize an existing one",
		"   add        Add new or modified files to the staging area",
		"   rm         Remove files from the working directory and staging area",
		"   mv         Move or rename a file, a directory, or a symlink",
		"   status     Show the status of the working directory and staging area",
		"   commit     Record changes to the repository",
	}

	if diff := cmp.Diff(want, strings.Split(cmd.Help(), "\n")); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, commands, cmd.Commands())
}

func TestRender_Version(t *testing.T) {
	cmd := newPizzaCli(t, WithVersion("v0.1.0"))

	help := strings.Split(cmd.Help(), "\n")
	require.Greater(t, len(help), 2)
	assert.Equal(t, "pizza-cli", help[0])
	assert.Equal(t, "v0.1.0", help[1])
}

func TestRender_NoOptions(t *testing.T) {
	cmd, err := New("hello", "", WithOption("Hello", NewFlag()))
	require.NoError(t, err)

	want := []string{
		"hello",
		"",
		"",
		"",
		"Options:",
		"   -h, --hello",
	}
	if diff := cmp.Diff(want, strings.Split(cmd.Help(), "\n")); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SubCommandTitle(t *testing.T) {
	cmd, err := New("git", "")
	require.NoError(t, err)
	remote, err := cmd.AddCommand("remote", "Manage set of tracked repositories", nil)
	require.NoError(t, err)

	help := strings.Split(remote.Help(), "\n")
	assert.Equal(t, "git remote", help[0])
	assert.Equal(t, "Manage set of tracked repositories", help[2])
}

func TestRender_Color(t *testing.T) {
	cmd, err := New("git", "", WithColor(true))
	require.NoError(t, err)
	_, err = cmd.AddCommand("init", "Create an empty git repository", nil)
	require.NoError(t, err)

	help := strings.Split(cmd.Help(), "\n")
	assert.True(t, strings.HasPrefix(help[4], "\x1b[1mOptions:\x1b["), "got %q", help[4])
	assert.True(t, strings.HasPrefix(help[7], "\x1b[1mCommands:\x1b["), "got %q", help[7])
	assert.Equal(t, "   -h, --help     prints this help message", help[5], "rows are not colored")

	sub, _ := cmd.Command("init")
	assert.True(t, strings.Contains(sub.Help(), "\x1b[1m"), "sub-commands inherit the layout")
}

func TestRender_Wrap(t *testing.T) {
	cmd := newPizzaCli(t, WithWrapWidth(45))

	help := strings.Split(cmd.Help(), "\n")
	want := []string{
		"Options:",
		"   -c, --no-cheese     Don't use any cheese",
		"   -p, --pepperoni     Add Pepperoni",
		"   -s, --size          Choose a size for the",
		"                       pizza",
		"   -t, --tip           A tip for the delivery",
		"                       guy",
		"   -h, --help          prints this help",
		"                       message",
	}
	if diff := cmp.Diff(want, help[4:]); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_WrapKeepsMinimumWidth(t *testing.T) {
	r := NewRenderer()
	r.width = 10

	lines := r.wrap("one two three four five six", 30)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), minWrap)
	}
	assert.Equal(t, "one two three four five six", strings.Join(lines, " "))
}

func TestRender_WrapDisabled(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, []string{"a long description which is never wrapped"}, r.wrap("a long description which is never wrapped", 80))
}
