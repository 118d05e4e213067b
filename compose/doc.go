// Package compose normalizes schema composition keywords in OpenAPI and
// JSON-Schema style documents.
//
// Three independent transforms are provided, each a single pass over a deep
// copy of the input:
//
//   - [FlattenAllOf] folds every allOf list into a single object
//   - [SelectFirstOneOf] replaces every oneOf node with its first alternative
//   - [SelectFirstAnyOf] replaces every anyOf node with its first alternative
//
// # allOf Flattening
//
// Members are merged in list order: later members overwrite earlier ones on
// matching top-level keys, except the properties key, which is merged as a
// key union across all members. The host node's own sibling keys participate
// under the same rule, with members overwriting the host. Nested allOf lists
// inside the merged result are flattened in the same pass.
//
// # oneOf / anyOf Reduction
//
// The entire node carrying the keyword is replaced by element 0 of the
// alternative list; sibling keys and all other alternatives are discarded.
// An empty alternative list fails with a [normerrors.CompositionError],
// since it has no first element to select.
package compose
