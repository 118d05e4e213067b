package deref

import (
	"github.com/erraggy/oasnorm"
	"github.com/erraggy/oasnorm/internal/jsonpath"
	"github.com/erraggy/oasnorm/internal/nodewalk"
	"github.com/erraggy/oasnorm/normerrors"
)

// Dereferencer inlines local $ref pointers in documents.
// The zero value dereferences the whole document with default limits.
type Dereferencer struct {
	// Scope is a JSONPath expression selecting the subtree to dereference.
	// The first match is used. Empty means "$", the whole document.
	Scope string

	// IgnorePaths holds JSONPath expressions, evaluated against the full
	// document, naming subtrees whose content is left untouched.
	IgnorePaths []string

	// MaxDepth bounds the nesting depth walked during resolution.
	// Zero means the default of 100.
	MaxDepth int

	// Logger reports non-fatal conditions. Nil means no logging.
	Logger oasnorm.Logger
}

// New creates a Dereferencer with default settings.
func New() *Dereferencer {
	return &Dereferencer{}
}

// Dereference inlines local references using functional options.
//
// The document is deep-copied before any transformation; the input is never
// modified. Any resolution failure aborts the whole call with no partial
// result.
//
// Example:
//
//	resolved, err := deref.Dereference(doc,
//	    deref.WithScope("$.paths"),
//	    deref.WithIgnorePaths("$.components.x-stackQL-resources"),
//	)
func Dereference(document any, opts ...Option) (any, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	d := &Dereferencer{
		Scope:       cfg.scope,
		IgnorePaths: cfg.ignorePaths,
		MaxDepth:    cfg.maxDepth,
		Logger:      cfg.logger,
	}
	return d.Dereference(document)
}

// Dereference inlines local references within the configured scope and
// returns a new document with the resolved subtree spliced back in place.
func (d *Dereferencer) Dereference(document any) (any, error) {
	logger := d.Logger
	if logger == nil {
		logger = oasnorm.NopLogger{}
	}

	scopeExpr := d.Scope
	if scopeExpr == "" {
		scopeExpr = "$"
	}
	scopePath, err := jsonpath.Parse(scopeExpr)
	if err != nil {
		return nil, &normerrors.PathError{Expr: scopeExpr, Cause: err}
	}

	ignore := make([]*jsonpath.Path, 0, len(d.IgnorePaths))
	for _, expr := range d.IgnorePaths {
		p, err := jsonpath.Parse(expr)
		if err != nil {
			return nil, &normerrors.PathError{Expr: expr, Cause: err}
		}
		ignore = append(ignore, p)
	}

	clone := nodewalk.Clone(document)

	scope, ok := scopePath.First(clone)
	if !ok {
		logger.Warn("scope matched no nodes", "scope", scopeExpr)
		return nil, &normerrors.PathError{Expr: scopeExpr, NotFound: true}
	}

	// Pointers resolve against the original input, not the clone being
	// rebuilt, so a reference target is never observed mid-transform.
	r := &resolver{root: document}

	resolved, err := nodewalk.Walk(scope.Value, r.transform, scope.Steps, nodewalk.Options{
		MaxDepth: d.MaxDepth,
		Ignore:   ignore,
	})
	if err != nil {
		return nil, err
	}

	return jsonpath.Splice(clone, scope.Steps, resolved), nil
}
