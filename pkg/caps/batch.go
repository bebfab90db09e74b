package caps

import "github.com/sqlcaps/sqlcaps/pkg/token"

// Stats summarizes one batch pass.
type Stats struct {
	// Scanned is the number of tokens considered.
	Scanned int
	// Rewritten is the number of tokens replaced with their canonical form.
	Rewritten int
	// Confirmed is the number of keyword tokens already in canonical form.
	Confirmed int
}

// CapitalizeRegion scans [begin, end) token by token, forward, invoking the
// engine once per token. A token straddling the begin boundary is still
// considered in full. Progress is monotonic: the scan always advances past
// the previous token whether or not it was capitalized, so the pass
// terminates for any finite range.
func (e *Engine) CapitalizeRegion(begin, end int) (Stats, error) {
	var stats Stats

	if begin < 0 {
		begin = 0
	}
	if max := e.doc.Len(); end > max {
		end = max
	}
	if begin >= end {
		return stats, nil
	}

	// Keyword replacements are same-length ASCII rewrites, so the snapshot
	// taken here stays offset-accurate across the whole pass.
	text := e.doc.ReadText(token.Span{Start: 0, End: e.doc.Len()})
	extra := e.Dialect().ExtraWordChars

	pos := begin
	for pos < end {
		sp, ok := token.NextWord(text, pos, extra)
		if !ok || sp.Start >= end {
			break
		}
		stats.Scanned++
		out, err := e.MaybeCapitalize(sp)
		if err != nil {
			return stats, err
		}
		switch out {
		case Capitalized:
			stats.Rewritten++
		case AlreadyCanonical:
			stats.Confirmed++
		}
		if sp.End > pos {
			pos = sp.End
		} else {
			pos++
		}
	}
	return stats, nil
}

// CapitalizeBuffer runs CapitalizeRegion over the full document extent.
func (e *Engine) CapitalizeBuffer() (Stats, error) {
	return e.CapitalizeRegion(0, e.doc.Len())
}
