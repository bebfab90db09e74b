package caps

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sqlcaps/sqlcaps/pkg/dialect"
)

// KeywordSet maps a normalized (lowercased) keyword to its canonical
// uppercase form. Immutable once built for a given dialect; rebuilt after
// invalidation.
type KeywordSet map[string]string

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// BuildKeywordSet normalizes a raw keyword list into a KeywordSet.
func BuildKeywordSet(words []string) KeywordSet {
	set := make(KeywordSet, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[lowerCaser.String(w)] = upperCaser.String(w)
	}
	return set
}

// KeywordRegistry is the per-document keyword cache. The cached set is keyed
// to the dialect it was built for and must be discarded, not reused, when
// the document's dialect changes; the host calls Invalidate on its
// dialect-change notification.
type KeywordRegistry struct {
	set         KeywordSet
	dialectName string
}

// NewKeywordRegistry returns an empty registry; the set is built lazily on
// the first Get.
func NewKeywordRegistry() *KeywordRegistry {
	return &KeywordRegistry{}
}

// Get returns the keyword set for the document's active dialect, building
// and caching it if needed. Source resolution order: the dedicated
// key/value-command table, the host mode's native keyword table, then the
// registered dialect table with fallback to the default dialect.
func (r *KeywordRegistry) Get(doc Document) KeywordSet {
	name := doc.ActiveDialect()
	if name == "" {
		name = dialect.DefaultName
	}
	if r.set != nil && r.dialectName == name {
		return r.set
	}
	r.set = BuildKeywordSet(sourceKeywords(doc, name))
	r.dialectName = name
	return r.set
}

// Invalidate clears the cache. The next Get rebuilds it.
func (r *KeywordRegistry) Invalidate() {
	r.set = nil
	r.dialectName = ""
}

func sourceKeywords(doc Document, name string) []string {
	if kw := doc.RedisKeywords(); len(kw) > 0 {
		return kw
	}
	if kw, ok := doc.NativeKeywords(); ok && len(kw) > 0 {
		return kw
	}
	if d := dialect.Resolve(name); d != nil {
		return d.Keywords
	}
	return nil
}
