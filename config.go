package chained

// Config defines configurable container options, applied through the
// functional options accepted by every constructor in this package.
type Config struct {
	mem MemLimiter
}

// WithMemLimiter attaches a MemLimiter to the container being constructed.
// Every node, bucket array and vector buffer is reserved against the limiter
// before it is allocated and released again when it is freed. Without a
// limiter, fallible operations never fail.
func WithMemLimiter(mem MemLimiter) func(*Config) {
	return func(c *Config) {
		c.mem = mem
	}
}

func applyOptions(options []func(*Config)) Config {
	var c Config
	for _, o := range options {
		o(&c)
	}
	return c
}
