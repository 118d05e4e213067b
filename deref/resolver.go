package deref

import (
	"strings"

	"github.com/agentflare-ai/jsonpointer"

	"github.com/erraggy/oasnorm/internal/nodewalk"
	"github.com/erraggy/oasnorm/normerrors"
)

// resolver resolves local fragment pointers against a fixed document root.
// The root is the original, unmodified input document, never the partially
// transformed output.
type resolver struct {
	root any
}

// transform is the per-node walk transform: reference nodes are replaced by
// their resolved content, everything else passes through unchanged.
func (r *resolver) transform(node any) (any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return node, nil
	}
	ref, ok := obj["$ref"].(string)
	if !ok {
		return node, nil
	}
	return r.resolve(ref, make(map[string]bool))
}

// resolve follows a pointer to concrete content. When the target is itself a
// reference node, resolution continues down the chain, so multi-hop
// indirection yields the final content directly. chain tracks the pointers
// already followed in this resolution; revisiting one is a cycle.
func (r *resolver) resolve(ref string, chain map[string]bool) (any, error) {
	if chain[ref] {
		return nil, &normerrors.ReferenceError{Ref: ref, IsCircular: true}
	}
	chain[ref] = true

	if !strings.HasPrefix(ref, "#") {
		return nil, &normerrors.ReferenceError{
			Ref:       ref,
			IsInvalid: true,
			Message:   "only local fragment pointers are supported",
		}
	}

	fragment := strings.TrimPrefix(ref, "#")
	if fragment == "" || fragment == "/" {
		// A pointer to the document root encloses itself.
		return nil, &normerrors.ReferenceError{Ref: ref, IsCircular: true}
	}

	target, err := jsonpointer.Get(r.root, fragment)
	if err != nil {
		return nil, &normerrors.ReferenceError{Ref: ref, Cause: err}
	}

	if next, ok := refPointer(target); ok {
		return r.resolve(next, chain)
	}

	// Detach the result from the root so the output never aliases the input.
	return nodewalk.Clone(target), nil
}

// refPointer reports whether a node is a reference node and returns its
// pointer string.
func refPointer(node any) (string, bool) {
	obj, ok := node.(map[string]any)
	if !ok {
		return "", false
	}
	ref, ok := obj["$ref"].(string)
	return ref, ok
}
