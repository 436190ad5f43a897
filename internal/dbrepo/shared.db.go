package dbrepo

import (
	"fmt"
	"strings"
)

// buildUpdateSet builds the SET clause for a partial update from the
// caller-supplied field map. Only columns on the allow-list are
// applied; anything else is silently dropped. Placeholders start at $1
// and the returned args line up with them.
func buildUpdateSet(fields map[string]any, allowed []string) (string, []any) {
	var (
		parts []string
		args  []any
	)
	for _, col := range allowed {
		value, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, value)
		parts = append(parts, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	return strings.Join(parts, ", "), args
}
