package config

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders a human-readable report of every effective field and
// the source that set it, for `ashwm config explain`.
func Explain(res *LoadResult) string {
	var b strings.Builder
	keys := make([]string, 0, len(res.Sources))
	for k := range res.Sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		src := res.Sources[k]
		switch src.Kind {
		case SourceFile:
			fmt.Fprintf(&b, "%-14s from %s\n", k, src.File)
		default:
			fmt.Fprintf(&b, "%-14s default\n", k)
		}
	}
	return b.String()
}
