package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlcaps/sqlcaps/internal/cli/config"
	"github.com/sqlcaps/sqlcaps/pkg/caps"

	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/ansi"
	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/postgres"
	_ "github.com/sqlcaps/sqlcaps/pkg/dialects/redis"
)

func TestFeedLine(t *testing.T) {
	doc, eng := newEngine(&config.Config{}, "repl", "")
	trigger := caps.NewTrigger(eng)

	assert.Equal(t, "SELECT * FROM foo;", feedLine(doc, trigger, "select * from foo;"))
	// The session document accumulates lines.
	assert.Equal(t, "INSERT INTO t;", feedLine(doc, trigger, "insert into t;"))
	assert.Equal(t, "SELECT * FROM foo;\nINSERT INTO t;\n", doc.Content())
}

func TestFeedLineRespectsBlacklist(t *testing.T) {
	doc, eng := newEngine(&config.Config{Blacklist: []string{"from"}}, "repl", "")
	trigger := caps.NewTrigger(eng)

	assert.Equal(t, "SELECT x from t;", feedLine(doc, trigger, "select x from t;"))
}

func TestDotCommands(t *testing.T) {
	doc, eng := newEngine(&config.Config{}, "repl", "")
	trigger := caps.NewTrigger(eng)

	var out bytes.Buffer

	// Switch dialect; the next line uses the redis command table.
	quit := handleDotCommand(&out, doc, eng, trigger, ".dialect redis", nil)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "redis")
	assert.Equal(t, "HGET h f", feedLine(doc, trigger, "hget h f"))

	// Unknown dialect is reported, not applied.
	out.Reset()
	handleDotCommand(&out, doc, eng, trigger, ".dialect oracle", nil)
	assert.Contains(t, out.String(), "unknown dialect")
	assert.Equal(t, "redis", eng.Dialect().Name)

	// Toggle the trigger off and on.
	handleDotCommand(&out, doc, eng, trigger, ".off", nil)
	assert.False(t, trigger.Enabled())
	assert.Equal(t, "set k v", feedLine(doc, trigger, "set k v"))
	handleDotCommand(&out, doc, eng, trigger, ".on", nil)
	assert.True(t, trigger.Enabled())

	// Quit.
	assert.True(t, handleDotCommand(&out, doc, eng, trigger, ".quit", nil))

	// Blacklist display.
	out.Reset()
	handleDotCommand(&out, doc, eng, trigger, ".blacklist", []string{"name"})
	assert.Contains(t, out.String(), "name")
}
