package config

import "strings"

// Tree is the parsed settings document: a nesting of groups (string-keyed
// maps), arrays, and scalars. It is never mutated after loading.
type Tree map[string]any

// Lookup resolves a dotted path like "default.switches" to the value at
// that path. ok is false when a segment is missing or the path traverses
// a non-group value.
func (t Tree) Lookup(path string) (val any, ok bool) {
	cur := any(map[string]any(t))
	for _, seg := range strings.Split(path, ".") {
		group, isGroup := cur.(map[string]any)
		if !isGroup {
			return nil, false
		}
		cur, ok = group[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Group returns the group at the dotted path. ok is false when the path
// is missing or names a non-group value.
func (t Tree) Group(path string) (Tree, bool) {
	v, ok := t.Lookup(path)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Tree(m), true
}

// Array returns the array at the dotted path. ok is false when the path
// is missing or names a non-array value.
func (t Tree) Array(path string) ([]any, bool) {
	v, ok := t.Lookup(path)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}
