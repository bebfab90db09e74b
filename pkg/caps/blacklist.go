package caps

import "strings"

// Blacklist is the set of words exempt from capitalization. Matching is
// exact, case-insensitive and whole-token; entries are literal strings, not
// patterns. The engine only reads it; mutation happens at configuration
// load, before a snapshot is handed to the engine.
type Blacklist map[string]struct{}

// NewBlacklist builds a blacklist from the configured word list.
func NewBlacklist(words ...string) Blacklist {
	b := make(Blacklist, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		b[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Contains reports whether word is blacklisted.
func (b Blacklist) Contains(word string) bool {
	_, ok := b[strings.ToLower(word)]
	return ok
}
