package caps

import "github.com/sqlcaps/sqlcaps/pkg/token"

// triggerChars are the characters whose insertion causes the token behind
// the insertion point to be evaluated.
var triggerChars = map[rune]struct{}{
	' ':  {},
	'\n': {},
	',':  {},
	';':  {},
	'(':  {},
	'\'': {},
}

// IsTriggerChar reports whether ch belongs to the trigger set.
func IsTriggerChar(ch rune) bool {
	_, ok := triggerChars[ch]
	return ok
}

// Trigger is the incremental driver: a single reactive callback invoked on
// character-insertion notifications. It keeps no state of its own beyond
// the enable toggle; the keyword cache lives in the engine.
type Trigger struct {
	engine  *Engine
	enabled bool
}

// NewTrigger creates an enabled trigger for the engine.
func NewTrigger(e *Engine) *Trigger {
	return &Trigger{engine: e, enabled: true}
}

// Enable installs the trigger.
func (t *Trigger) Enable() { t.enabled = true }

// Disable uninstalls the trigger; HandleInsert becomes a no-op.
func (t *Trigger) Disable() { t.enabled = false }

// Enabled reports whether the trigger is installed.
func (t *Trigger) Enabled() bool { return t.enabled }

// HandleInsert processes a character-insertion notification. offset is the
// position the character was inserted at, so the candidate token lies
// strictly before it. The scan is observational: it reads text and issues
// at most one replacement, never moving any host position.
func (t *Trigger) HandleInsert(offset int, ch rune) (Outcome, error) {
	if !t.enabled || !IsTriggerChar(ch) {
		return Skipped, nil
	}
	doc := t.engine.Document()
	if offset > doc.Len() {
		offset = doc.Len()
	}
	text := doc.ReadText(token.Span{Start: 0, End: offset})
	sp, ok := token.PrevWord(text, offset, t.engine.Dialect().ExtraWordChars)
	if !ok {
		return Skipped, nil
	}
	return t.engine.MaybeCapitalize(sp)
}
