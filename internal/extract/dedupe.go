package extract

import (
	"slices"
	"strings"
)

// IsDuplicate reports whether candidate names an organization already present
// in accepted. Two names collide when their normalized keys are equal, or
// when either key appears as a whole word in the other's tokenization
// ("Acme" vs "Acme Corp"). The check is pure; the first-seen surface form
// stays canonical.
func IsDuplicate(candidate string, accepted []string) bool {
	key := NormalizeKey(candidate)
	for _, existing := range accepted {
		existingKey := NormalizeKey(existing)
		if key == existingKey {
			return true
		}
		if slices.Contains(strings.Fields(existingKey), key) ||
			slices.Contains(strings.Fields(key), existingKey) {
			return true
		}
	}
	return false
}
