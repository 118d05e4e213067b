// Package normerrors provides structured error types for oasnorm.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ReferenceError: $ref resolution failures, circular references, and
//     unsupported pointer syntax
//   - PathError: JSONPath expressions that are invalid or match no nodes
//   - CompositionError: malformed composition keywords (empty oneOf/anyOf)
//   - ResourceLimitError: resource exhaustion (nesting depth limits)
//
// # Usage with errors.Is
//
//	resolved, err := deref.Dereference(doc)
//	if err != nil {
//	    var refErr *normerrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        if refErr.IsCircular {
//	            // Handle circular reference specifically
//	        }
//	    }
//	}
package normerrors
