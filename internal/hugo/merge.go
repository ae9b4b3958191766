package hugo

import (
	"sort"
	"strings"
)

// mergeParams deep-merges src into dst (map[string]any).
// - Maps: merged recursively
// - Slices & scalars: replaced.
func mergeParams(dst, src map[string]any) {
	if src == nil {
		return
	}
	for k, v := range src {
		if mv, ok := v.(map[string]any); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				mergeParams(existing, mv)
			} else {
				cp := map[string]any{}
				mergeParams(cp, mv)
				dst[k] = cp
			}
			continue
		}
		dst[k] = v
	}
}

// ParamsFromFlags expands dotted keys ("ui.navbar_logo=false") into nested maps.
// Keys are applied in sorted order, so a nested key wins over a scalar parent.
func ParamsFromFlags(flags map[string]string) map[string]any {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := map[string]any{}
	for _, key := range keys {
		value := flags[key]
		parts := strings.Split(key, ".")
		node := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := node[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				node[p] = next
			}
			node = next
		}
		node[parts[len(parts)-1]] = value
	}
	return out
}
