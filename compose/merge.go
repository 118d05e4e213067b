package compose

// mergeAllOf folds an allOf member list into a single object. The host
// node's sibling keys form the base; members are then merged in list order,
// so later members overwrite earlier ones (and the host) on matching keys.
// The properties key is the exception: entries are unioned across the host
// and all members, with same-named entries overwritten by the later
// contributor and all others kept.
func mergeAllOf(host map[string]any, members []any) map[string]any {
	merged := make(map[string]any, len(host))
	for k, v := range host {
		if k != "allOf" {
			merged[k] = v
		}
	}

	for _, member := range members {
		obj, ok := member.(map[string]any)
		if !ok {
			// Non-object members carry no keys to merge.
			continue
		}
		for k, v := range obj {
			if k == "properties" {
				merged[k] = unionProperties(merged[k], v)
				continue
			}
			merged[k] = v
		}
	}

	return merged
}

// unionProperties merges a member's properties object into the accumulated
// one as a key union. When either side is not an object, the incoming value
// wins, matching the plain overwrite rule.
func unionProperties(existing, incoming any) any {
	existingObj, ok := existing.(map[string]any)
	if !ok {
		return incoming
	}
	incomingObj, ok := incoming.(map[string]any)
	if !ok {
		return incoming
	}

	union := make(map[string]any, len(existingObj)+len(incomingObj))
	for k, v := range existingObj {
		union[k] = v
	}
	for k, v := range incomingObj {
		union[k] = v
	}
	return union
}
