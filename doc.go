// Package oasnorm provides normalization tools for OpenAPI and JSON-Schema
// style documents held as plain in-memory trees.
//
// oasnorm offers two feature packages built on a shared tree-walking core:
//
//   - deref: inline local $ref pointers, optionally scoped to a subtree and
//     excluding named subtrees
//   - compose: normalize schema composition keywords (allOf merge, oneOf and
//     anyOf first-choice reduction)
//
// Documents are untyped trees (map[string]any, []any, and scalars), the shape
// produced by YAML or JSON unmarshaling. Loading documents from text and
// serializing results back out is the caller's responsibility; every oasnorm
// operation takes a tree and returns a brand-new tree, never modifying its
// input.
//
// # Quick Start
//
// Resolve all local references in a document:
//
//	import "github.com/erraggy/oasnorm/deref"
//
//	resolved, err := deref.Dereference(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Restrict resolution to a subtree and protect another:
//
//	resolved, err := deref.Dereference(doc,
//		deref.WithScope("$.paths"),
//		deref.WithIgnorePaths("$.components.x-stackQL-resources"),
//	)
//
// Flatten schema composition:
//
//	import "github.com/erraggy/oasnorm/compose"
//
//	flat, err := compose.FlattenAllOf(doc)
//
// # Error Handling
//
// Failures are reported with structured error types from
// [github.com/erraggy/oasnorm/normerrors], usable with errors.Is and
// errors.As:
//
//	if errors.Is(err, normerrors.ErrCircularReference) {
//		// reference cycle in the document
//	}
package oasnorm
