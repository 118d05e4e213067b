// Package deref inlines local $ref pointers in OpenAPI and JSON-Schema style
// documents.
//
// Dereferencing replaces every reference node (a mapping carrying a $ref key
// with a local fragment pointer such as "#/components/schemas/Pet") with the
// content the pointer addresses. Chained references resolve through to the
// final concrete content, and every pointer is resolved against the original,
// unmodified input document, so a reference target is never observed
// mid-transform.
//
// # Quick Start
//
// Resolve every reference in a document:
//
//	resolved, err := deref.Dereference(doc)
//
// Restrict resolution to a subtree selected by a JSONPath expression, and
// protect other subtrees from being touched:
//
//	resolved, err := deref.Dereference(doc,
//		deref.WithScope("$.paths"),
//		deref.WithIgnorePaths("$.components.x-stackQL-resources"),
//	)
//
// Or use a reusable Dereferencer instance:
//
//	d := deref.New()
//	d.Scope = "$.components.responses"
//	resolved, err := d.Dereference(doc)
//
// # Scoping and Exclusion
//
// The scope expression selects the subtree to dereference; the first match
// is used. Ignore expressions are evaluated against the full document, never
// the scope, and mark subtrees whose content is left verbatim. A reference
// inside an ignored subtree may dangle without failing the operation.
//
// # Failure Modes
//
// Dereference fails with a [normerrors.ReferenceError] when a pointer's path
// does not exist in the document, when a reference chain is circular, or when
// a $ref is not a local fragment pointer. A scope that matches no nodes fails
// with a [normerrors.PathError] wrapping normerrors.ErrPathNotFound. Errors
// abort the whole call; no partial document is returned.
package deref
