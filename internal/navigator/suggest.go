package navigator

import "github.com/sahilm/fuzzy"

const maxSuggestions = 3

// suggest returns the names closest to a missing one, best match first
func suggest(name string, names []string) []string {
	if name == "" || len(names) == 0 {
		return nil
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
