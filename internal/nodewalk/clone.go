package nodewalk

// Clone creates a deep copy of a document using recursive copying.
//
// Unlike JSON marshal/unmarshal round-trips, this preserves exact scalar
// types and float precision.
func Clone(doc any) any {
	switch val := doc.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v := range val {
			result[k] = Clone(v)
		}
		return result

	case []any:
		result := make([]any, len(val))
		for i, v := range val {
			result[i] = Clone(v)
		}
		return result

	default:
		// Scalars (string, bool, numeric types, nil) are immutable.
		return val
	}
}
