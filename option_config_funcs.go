package commander

// WithShortName sets the single-rune short form of an option, e.g. 'c' for -c. Defaults to the lower-cased
// first letter of the option's key.
func WithShortName(short rune) ConfigureOptionFunc {
	return func(d *Descriptor) {
		d.Short = short
	}
}

// WithLongName sets the long form of an option, e.g. "no-cheese" for --no-cheese. Defaults to the option's key
// converted by the Commander's flag name converter.
func WithLongName(long string) ConfigureOptionFunc {
	return func(d *Descriptor) {
		d.Long = long
	}
}

// WithDescription the description will be used in help output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(d *Descriptor) {
		d.Description = description
	}
}

// SetRequired when true, a value option must be supplied on the command-line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(d *Descriptor) {
		d.Required = required
	}
}

// IsRequired is shorthand for SetRequired(true)
func IsRequired() ConfigureOptionFunc {
	return SetRequired(true)
}
