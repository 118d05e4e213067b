// Package nodewalk provides the pre-order tree substitution walk shared by
// the deref and compose packages.
//
// A walk offers every node to a transform, then descends into the (possibly
// replaced) node's children and rebuilds each container from the transformed
// children. The walk is purely functional: it returns a new tree and never
// modifies the one it was given.
package nodewalk

import (
	"sort"

	"github.com/erraggy/oasnorm/internal/jsonpath"
	"github.com/erraggy/oasnorm/normerrors"
)

// DefaultMaxDepth is the maximum nesting depth walked before a walk fails
// with a ResourceLimitError. This bounds recursion on pathological documents.
const DefaultMaxDepth = 100

// Transform maps a node to its replacement. Returning the node unchanged is
// the common case; returning an error aborts the entire walk.
type Transform func(node any) (any, error)

// Options configures a walk.
type Options struct {
	// MaxDepth bounds the nesting depth below the walk's starting node.
	// Zero means DefaultMaxDepth.
	MaxDepth int

	// Ignore holds path expressions naming subtrees to leave untouched.
	// A node whose absolute address matches any expression is returned
	// as-is and not descended into. Expressions are matched against the
	// full document address, so callers walking a subtree must pass that
	// subtree's address as base.
	Ignore []*jsonpath.Path
}

// Walk applies transform to node and, pre-order, to every descendant of its
// replacement, rebuilding containers from the transformed children. base is
// the node's address within the full document; it anchors Ignore matching.
func Walk(node any, transform Transform, base []jsonpath.Step, opts Options) (any, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	w := &walker{transform: transform, maxDepth: maxDepth, ignore: opts.Ignore}
	return w.walk(node, base, 0)
}

type walker struct {
	transform Transform
	maxDepth  int
	ignore    []*jsonpath.Path
}

func (w *walker) walk(node any, path []jsonpath.Step, depth int) (any, error) {
	if depth > w.maxDepth {
		return nil, &normerrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        w.maxDepth,
			Actual:       depth,
		}
	}

	if w.ignored(path) {
		return node, nil
	}

	replaced, err := w.transform(node)
	if err != nil {
		return nil, err
	}

	switch v := replaced.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		// Sorted key order keeps error reporting deterministic.
		for _, key := range sortedKeys(v) {
			child, err := w.walk(v[key], append(path, jsonpath.Step{Key: key}), depth+1)
			if err != nil {
				return nil, err
			}
			out[key] = child
		}
		return out, nil

	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			child, err := w.walk(elem, append(path, jsonpath.Step{Index: i, IsIndex: true}), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil

	default:
		return replaced, nil
	}
}

func (w *walker) ignored(path []jsonpath.Step) bool {
	for _, p := range w.ignore {
		if p.MatchesSteps(path) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
