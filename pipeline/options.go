package pipeline

// config holds the structural parameters fixed at construction time.
type config struct {
	inputWidth int
	coeffWidth int
}

// Option configures a Pipeline at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		inputWidth: 16,
		coeffWidth: 16,
	}
}

// WithInputWidth sets the width of incoming samples in bits.
func WithInputWidth(width int) Option {
	return func(cfg *config) {
		cfg.inputWidth = width
	}
}

// WithTwiddleWidth sets the width of the stored rotation coefficients
// in bits.
func WithTwiddleWidth(width int) Option {
	return func(cfg *config) {
		cfg.coeffWidth = width
	}
}
