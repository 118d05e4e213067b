package deref

import (
	"fmt"

	"github.com/erraggy/oasnorm"
)

// Option is a function that configures a dereference operation.
type Option func(*config) error

// config holds configuration for a dereference operation.
type config struct {
	scope       string
	ignorePaths []string
	maxDepth    int
	logger      oasnorm.Logger
}

// WithScope restricts dereferencing to the subtree selected by a JSONPath
// expression. The first match is used as the scoping root. The default scope
// is "$", the whole document.
func WithScope(expr string) Option {
	return func(cfg *config) error {
		if expr == "" {
			return fmt.Errorf("scope expression cannot be empty")
		}
		cfg.scope = expr
		return nil
	}
}

// WithIgnorePaths names subtrees, as JSONPath expressions evaluated against
// the full document, whose content is left untouched. May be used multiple
// times; expressions accumulate.
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

// WithMaxDepth bounds the document nesting depth walked during resolution.
// The default is 100.
func WithMaxDepth(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		cfg.maxDepth = n
		return nil
	}
}

// WithLogger sets the logger used to report non-fatal conditions, such as a
// scope expression that matches no nodes.
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
