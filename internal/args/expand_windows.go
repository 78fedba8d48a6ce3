//go:build windows

package args

import (
	"os"
	"strings"
)

// ExpandEnv replaces %NAME% references with their current
// process-environment values. Unresolved references are left verbatim and
// names match case-insensitively, which is how the platform itself
// expands them. The case-insensitivity is a documented quirk carried on
// purpose, not corrected.
func ExpandEnv(s string) string {
	return expandEnv(s, lookupFold)
}

func expandEnv(s string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			b.WriteString(s[i:])
			break
		}
		name := s[i+1 : i+1+end]
		if v, ok := lookup(name); ok && name != "" {
			b.WriteString(v)
			i += end + 2
			continue
		}
		// Unknown reference (or "%%"): keep it exactly as written.
		b.WriteString(s[i : i+end+2])
		i += end + 2
	}

	return b.String()
}

func lookupFold(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
