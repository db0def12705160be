package dotmap

import "strings"

// Get resolves a dot-notation path in m, reporting whether every segment
// existed. A path that runs through a non-map value resolves to absent.
//
//	Get(m, "user.address.city") // → "London", true
//	Get(m, "user.missing")      // → nil, false
func Get(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Set writes value into m at the dot-notation path, creating intermediate
// maps as needed. A non-map value sitting on the path is replaced by a map.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Has reports whether the dot-notation path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Get(m, path)
	return ok
}

// Forget removes the dot-notation path from m.
// Intermediate maps left empty are not cleaned up.
func Forget(m map[string]any, path string) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(m, path)
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	Forget(child, rest)
}

// Flatten converts a nested map into a single-level map keyed by
// dot-notation paths.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto("", m, out)
	return out
}

func flattenInto(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(path, nested, out)
		} else {
			out[path] = v
		}
	}
}

// Expand converts a flat dot-keyed map back into nested form. It is the
// inverse of [Flatten] for maps whose leaves are not themselves maps.
//
//	Expand(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Expand(m map[string]any) map[string]any {
	out := make(map[string]any)
	for path, val := range m {
		Set(out, path, val)
	}
	return out
}

// Merge merges src into dst, returning dst. Values in src overwrite values
// in dst for matching keys; nested maps are merged recursively.
func Merge(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		if dstMap, ok := dst[k].(map[string]any); ok {
			if srcMap, ok := srcVal.(map[string]any); ok {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}
