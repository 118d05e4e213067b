package compose

import (
	"github.com/erraggy/oasnorm/internal/jsonpath"
	"github.com/erraggy/oasnorm/internal/nodewalk"
	"github.com/erraggy/oasnorm/normerrors"
)

// FlattenAllOf returns a new document in which every allOf list has been
// folded into a single object. See the package documentation for the merge
// rule. The input document is never modified.
func FlattenAllOf(document any, opts ...Option) (any, error) {
	return transformDocument(document, flattenAllOf, opts)
}

// SelectFirstOneOf returns a new document in which every node carrying a
// oneOf list has been replaced by the list's first alternative. The input
// document is never modified.
func SelectFirstOneOf(document any, opts ...Option) (any, error) {
	return transformDocument(document, selectFirst("oneOf"), opts)
}

// SelectFirstAnyOf returns a new document in which every node carrying an
// anyOf list has been replaced by the list's first alternative. The input
// document is never modified.
func SelectFirstAnyOf(document any, opts ...Option) (any, error) {
	return transformDocument(document, selectFirst("anyOf"), opts)
}

// transformDocument deep-copies the document and walks the whole copy with
// the given transform.
func transformDocument(document any, transform nodewalk.Transform, opts []Option) (any, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	ignore := make([]*jsonpath.Path, 0, len(cfg.ignorePaths))
	for _, expr := range cfg.ignorePaths {
		p, err := jsonpath.Parse(expr)
		if err != nil {
			return nil, &normerrors.PathError{Expr: expr, Cause: err}
		}
		ignore = append(ignore, p)
	}

	clone := nodewalk.Clone(document)

	return nodewalk.Walk(clone, transform, nil, nodewalk.Options{
		MaxDepth: cfg.maxDepth,
		Ignore:   ignore,
	})
}

// flattenAllOf is the per-node transform for FlattenAllOf. Merging repeats
// until the node carries no allOf key, since a member may itself contribute
// one; allOf nested deeper in the merged result is handled by the walk.
func flattenAllOf(node any) (any, error) {
	for {
		obj, ok := node.(map[string]any)
		if !ok {
			return node, nil
		}
		members, ok := obj["allOf"].([]any)
		if !ok {
			return node, nil
		}
		node = mergeAllOf(obj, members)
	}
}

// selectFirst returns the per-node transform reducing the given keyword
// ("oneOf" or "anyOf") to its first alternative. The replacement may itself
// carry the keyword at top level, so reduction repeats until stable; deeper
// occurrences are handled by the walk.
func selectFirst(keyword string) nodewalk.Transform {
	return func(node any) (any, error) {
		for {
			obj, ok := node.(map[string]any)
			if !ok {
				return node, nil
			}
			alternatives, ok := obj[keyword].([]any)
			if !ok {
				return node, nil
			}
			if len(alternatives) == 0 {
				return nil, &normerrors.CompositionError{
					Keyword: keyword,
					Message: "no first alternative to select",
				}
			}
			node = alternatives[0]
		}
	}
}
