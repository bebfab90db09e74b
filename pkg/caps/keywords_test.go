package caps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlcaps/sqlcaps/internal/document"
	"github.com/sqlcaps/sqlcaps/pkg/caps"
)

func TestBuildKeywordSet(t *testing.T) {
	set := caps.BuildKeywordSet([]string{"SELECT", "From", "where", ""})
	assert.Equal(t, caps.KeywordSet{
		"select": "SELECT",
		"from":   "FROM",
		"where":  "WHERE",
	}, set)
}

func TestKeywordRegistryCachesPerDialect(t *testing.T) {
	doc := document.New("t.sql", "")
	reg := caps.NewKeywordRegistry()

	ansiSet := reg.Get(doc)
	assert.Contains(t, ansiSet, "select")
	assert.NotContains(t, ansiSet, "hget")

	// Same dialect: same cached set.
	again := reg.Get(doc)
	assert.Equal(t, len(ansiSet), len(again))

	// A dialect switch without invalidation would be a stale read; the
	// host wiring calls Invalidate synchronously on SetDialect, and the
	// registry also re-keys by dialect name on its own.
	doc.SetDialect("redis")
	redisSet := reg.Get(doc)
	assert.Contains(t, redisSet, "hget")
	assert.NotContains(t, redisSet, "where")
}

func TestKeywordRegistryInvalidate(t *testing.T) {
	doc := document.New("t.sql", "")
	reg := caps.NewKeywordRegistry()

	first := reg.Get(doc)
	assert.NotEmpty(t, first)

	reg.Invalidate()
	rebuilt := reg.Get(doc)
	assert.Equal(t, first, rebuilt)
}

func TestBlacklist(t *testing.T) {
	b := caps.NewBlacklist("Name", "  value  ", "")
	assert.True(t, b.Contains("name"))
	assert.True(t, b.Contains("NAME"))
	assert.True(t, b.Contains("value"))
	assert.False(t, b.Contains("select"))
	assert.Len(t, b, 2)

	var empty caps.Blacklist
	assert.False(t, empty.Contains("anything"))
}
