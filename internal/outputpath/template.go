package outputpath

import (
	"sort"
	"strings"
)

// Expand substitutes every %name occurrence in template for each name
// present in tokens. Substitution is literal and runs once per name; longer
// names go first so %datetime can never be consumed by a %date pass,
// keeping the result independent of map iteration order.
func Expand(template string, tokens map[string]string) string {
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	result := template
	for _, name := range names {
		result = strings.ReplaceAll(result, "%"+name, tokens[name])
	}
	return result
}
