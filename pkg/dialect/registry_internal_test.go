package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapRegistry replaces the global registry for the duration of a test.
func swapRegistry(t *testing.T, m map[string]*Dialect) {
	t.Helper()
	dialectsMu.Lock()
	saved := dialects
	dialects = m
	dialectsMu.Unlock()
	t.Cleanup(func() {
		dialectsMu.Lock()
		dialects = saved
		dialectsMu.Unlock()
	})
}

func TestResolveWithEmptyRegistry(t *testing.T) {
	swapRegistry(t, make(map[string]*Dialect))

	// A binary that registers no dialects at all must still get a usable
	// dialect value back, never nil.
	d := Resolve("postgres")
	require.NotNil(t, d)
	assert.Equal(t, DefaultName, d.Name)
	assert.Empty(t, d.Keywords)
	assert.Empty(t, d.ExtraWordChars)

	d = Resolve("")
	require.NotNil(t, d)
	assert.Equal(t, DefaultName, d.Name)
}

func TestResolvePrefersRegisteredDefault(t *testing.T) {
	def := &Dialect{Name: DefaultName, Keywords: []string{"SELECT"}}
	swapRegistry(t, map[string]*Dialect{DefaultName: def})

	assert.Same(t, def, Resolve("unregistered"))
	assert.Same(t, def, Resolve(""))
	assert.Same(t, def, Resolve(DefaultName))
}
