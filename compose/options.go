package compose

import (
	"fmt"

	"github.com/erraggy/oasnorm"
)

// Option is a function that configures a composition transform.
type Option func(*config) error

// config holds configuration for a composition transform.
type config struct {
	ignorePaths []string
	maxDepth    int
	logger      oasnorm.Logger
}

// WithIgnorePaths names subtrees, as JSONPath expressions evaluated against
// the full document, whose composition keywords are left untouched. May be
// used multiple times; expressions accumulate.
func WithIgnorePaths(exprs ...string) Option {
	return func(cfg *config) error {
		for _, expr := range exprs {
			if expr == "" {
				return fmt.Errorf("ignore path expression cannot be empty")
			}
		}
		cfg.ignorePaths = append(cfg.ignorePaths, exprs...)
		return nil
	}
}

// WithMaxDepth bounds the document nesting depth walked during the
// transform. The default is 100.
func WithMaxDepth(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		cfg.maxDepth = n
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger oasnorm.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
