package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jaja/commander"
	"golang.org/x/term"
)

type Config struct {
	NoCheese  *commander.Flag
	Pepperoni *commander.Flag
	Size      *commander.Opt[string]
	Tip       *commander.Opt[int]
	Toppings  *commander.Opt[[]string]
	At        *commander.Opt[time.Time]
}

type TrackConfig struct {
	Every   *commander.Opt[time.Duration]
	Verbose *commander.Flag
}

func main() {
	cfg := &Config{
		NoCheese:  commander.NewFlag(commander.WithShortName('c'), commander.WithLongName("no-cheese"), commander.WithDescription("Don't use any cheese")),
		Pepperoni: commander.NewFlag(commander.WithDescription("Add Pepperoni")),
		Size:      commander.NewOpt[string](commander.WithDescription("Choose a size for the pizza"), commander.IsRequired()),
		Tip:       commander.NewOpt[int](commander.WithDescription("A tip for the delivery guy")).WithDefault(2),
		Toppings:  commander.NewOpt[[]string](commander.WithShortName('x'), commander.WithDescription("Extra toppings, separated by commas")),
		At:        commander.NewOpt[time.Time](commander.WithDescription("Deliver at the given time instead of as soon as possible")),
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if os.Getenv("PIZZA_DEBUG") != "" {
		level.Set(slog.LevelDebug)
	}

	cmd, err := commander.New("pizza-cli", "Order a pizza through command line",
		commander.WithVersion("v0.1.0"),
		commander.WithLogger(logger),
		commander.WithColor(term.IsTerminal(int(os.Stdout.Fd()))),
		commander.WithTerminalWrap(),
		commander.WithFlagNameConverter(commander.ToKebabCase),
		commander.WithOptionsFrom(cfg),
		commander.WithCallback(func(res *commander.Result) error {
			return order(cfg, res)
		}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	track := &TrackConfig{
		Every:   commander.NewOpt[time.Duration](commander.WithDescription("Polling interval")).WithDefault(30 * time.Second),
		Verbose: commander.NewFlag(commander.WithDescription("Show every courier position")),
	}
	_, err = cmd.AddCommand("track", "Follow an order until it is delivered", func(res *commander.Result) error {
		if len(res.Args()) != 1 {
			return fmt.Errorf("expected exactly one order number, got %d", len(res.Args()))
		}
		fmt.Printf("tracking order %s every %s\n", res.Args()[0], commander.Get(res, track.Every))
		if res.IsDefined(track.Verbose) {
			fmt.Println("courier positions will be shown")
		}
		return nil
	}, commander.WithOptionsFrom(track))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := cmd.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func order(cfg *Config, res *commander.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "ordering a %s pizza", commander.Get(res, cfg.Size))
	if res.IsDefined(cfg.NoCheese) {
		b.WriteString(" without cheese")
	}
	toppings := commander.Get(res, cfg.Toppings)
	if res.IsDefined(cfg.Pepperoni) {
		toppings = append(toppings, "pepperoni")
	}
	if len(toppings) > 0 {
		fmt.Fprintf(&b, " with %s", strings.Join(toppings, ", "))
	}
	if res.IsDefined(cfg.At) {
		fmt.Fprintf(&b, ", delivered at %s", commander.Get(res, cfg.At).Format(time.Kitchen))
	}
	fmt.Fprintf(&b, ", tipping %d", commander.Get(res, cfg.Tip))

	fmt.Println(b.String())

	return nil
}
