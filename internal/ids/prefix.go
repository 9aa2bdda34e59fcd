package ids

import "strings"

// MatchPrefix finds the ID matching a prefix, case-insensitively. found is
// false when nothing matches; ambiguous is true when several IDs share the
// prefix. An exact match wins over a shared prefix.
func MatchPrefix(ids []string, prefix string) (match string, found, ambiguous bool) {
	lowered := strings.ToLower(prefix)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == lowered {
			return id, true, false
		}
		if !strings.HasPrefix(idLower, lowered) {
			continue
		}
		if found {
			ambiguous = true
			continue
		}
		match = id
		found = true
	}
	if ambiguous {
		return "", true, true
	}
	return match, found, false
}
