package commander

// Result is what a successful Parse bound. It is independent of the Commander which produced
// it and is not modified afterwards.
type Result struct {
	command string
	args    []string
	values  map[Option]*binding
	byLong  map[string]*binding
}

type binding struct {
	defined bool
	value   any
}

// Command returns the path of the Commander which bound the result, e.g. "git commit"
func (r *Result) Command() string {
	return r.command
}

// Args returns the positional arguments in command-line order. The slice is empty, never nil,
// when there were none.
func (r *Result) Args() []string {
	args := make([]string, len(r.args))
	copy(args, r.args)

	return args
}

// IsDefined returns true when opt appeared on the command line
func (r *Result) IsDefined(opt Option) bool {
	if b, found := r.values[opt]; found {
		return b.defined
	}

	return false
}

// Defined returns true when the option with the given long name appeared on the command line
func (r *Result) Defined(long string) bool {
	if b, found := r.byLong[long]; found {
		return b.defined
	}

	return false
}

// Value returns the value bound to the option with the given long name, or its default when
// the option was absent. Flags report true or false. The second return value is false when no
// such option is registered.
func (r *Result) Value(long string) (any, bool) {
	b, found := r.byLong[long]
	if !found {
		return nil, false
	}

	return b.value, true
}

// Get returns the value bound to opt, or opt's default when it was absent or is not registered
// with the Commander which produced r.
func Get[T any](r *Result, opt *Opt[T]) T {
	if b, found := r.values[opt]; found {
		if v, ok := b.value.(T); ok {
			return v
		}
	}

	return opt.Default
}
