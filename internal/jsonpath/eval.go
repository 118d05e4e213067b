package jsonpath

import (
	"sort"
	"strconv"
)

// Step is one concrete traversal step within a document: a mapping key or a
// sequence index. A slice of Steps addresses exactly one node.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// String returns the step in bracketed JSONPath form.
func (s Step) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return "['" + s.Key + "']"
}

// FormatSteps renders a concrete step sequence as a JSONPath-style string,
// for diagnostics.
func FormatSteps(steps []Step) string {
	out := "$"
	for _, s := range steps {
		out += s.String()
	}
	return out
}

// Match is one node selected by an expression, together with the concrete
// steps that address it from the document root.
type Match struct {
	Value any
	Steps []Step
}

// Find evaluates the path against the document and returns all matches in
// document order. Mapping children selected by a wildcard are visited in
// sorted key order, so the first match for a given document is stable.
//
// The document should be a map[string]any or []any structure (typically from
// JSON/YAML unmarshaling). Returns an empty slice if nothing matches.
func (p *Path) Find(doc any) []Match {
	current := []Match{{Value: doc}}

	for _, seg := range p.segments {
		current = applySegment(current, seg)
		if len(current) == 0 {
			return nil
		}
	}

	return current
}

// First returns the first match for the path, or false if nothing matches.
func (p *Path) First(doc any) (Match, bool) {
	matches := p.Find(doc)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// MatchesSteps reports whether the expression admits the node addressed by
// the given concrete steps. Wildcard selectors admit any single step. The
// match is exact-length: a shorter or longer address never matches.
func (p *Path) MatchesSteps(steps []Step) bool {
	if len(steps) != len(p.segments) {
		return false
	}
	for i, seg := range p.segments {
		if !seg.matches(steps[i]) {
			return false
		}
	}
	return true
}

// applySegment applies a selector to the current matches and returns the
// extended matches.
func applySegment(current []Match, seg segment) []Match {
	var results []Match

	for _, m := range current {
		switch s := seg.(type) {
		case childSegment:
			if obj, ok := m.Value.(map[string]any); ok {
				if val, exists := obj[s.key]; exists {
					results = append(results, m.extend(val, Step{Key: s.key}))
				}
			}

		case indexSegment:
			if arr, ok := m.Value.([]any); ok {
				idx := s.index
				if idx < 0 {
					idx = len(arr) + idx
				}
				if idx >= 0 && idx < len(arr) {
					results = append(results, m.extend(arr[idx], Step{Index: idx, IsIndex: true}))
				}
			}

		case wildcardSegment:
			switch v := m.Value.(type) {
			case map[string]any:
				for _, key := range sortedKeys(v) {
					results = append(results, m.extend(v[key], Step{Key: key}))
				}
			case []any:
				for i, elem := range v {
					results = append(results, m.extend(elem, Step{Index: i, IsIndex: true}))
				}
			}
		}
	}

	return results
}

// extend returns a new match one step deeper, without aliasing the parent's
// step slice.
func (m Match) extend(val any, step Step) Match {
	steps := make([]Step, len(m.Steps)+1)
	copy(steps, m.Steps)
	steps[len(m.Steps)] = step
	return Match{Value: val, Steps: steps}
}

// Splice returns a new document with the node at the given concrete steps
// replaced by replacement. Containers along the spliced path are rebuilt;
// untouched siblings are shared with the input. The input document is never
// modified. If the steps do not address a node, the document is returned
// unchanged.
func Splice(doc any, steps []Step, replacement any) any {
	if len(steps) == 0 {
		return replacement
	}

	step := steps[0]
	if step.IsIndex {
		arr, ok := doc.([]any)
		if !ok || step.Index < 0 || step.Index >= len(arr) {
			return doc
		}
		out := make([]any, len(arr))
		copy(out, arr)
		out[step.Index] = Splice(arr[step.Index], steps[1:], replacement)
		return out
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	child, exists := obj[step.Key]
	if !exists {
		return doc
	}
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	out[step.Key] = Splice(child, steps[1:], replacement)
	return out
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
