// Package rebardebug carries the front end's own debug-event toggles
// and structured logging, kept separate from the façade's public
// error handling since it exists only to help an embedder instrument
// the front end itself (string engine reference events, analyzer
// pivot decisions), never to report user-facing source errors.
package rebardebug

import "sync/atomic"

var stringReferenceMessages atomic.Bool

var pivotSelectionMessages atomic.Bool

// EnableStringReferenceMessages turns on per-intern/erase logging from
// the string engine. Disabled by default; the check is a single
// atomic load so leaving it disabled costs nothing on the hot path.
func EnableStringReferenceMessages(enabled bool) {
	stringReferenceMessages.Store(enabled)
}

// StringReferenceMessagesEnabled reports the current toggle state.
func StringReferenceMessagesEnabled() bool {
	return stringReferenceMessages.Load()
}

// EnablePivotSelectionMessages turns on per-pivot-choice logging from
// the semantic analyzer.
func EnablePivotSelectionMessages(enabled bool) {
	pivotSelectionMessages.Store(enabled)
}

// PivotSelectionMessagesEnabled reports the current toggle state.
func PivotSelectionMessagesEnabled() bool {
	return pivotSelectionMessages.Load()
}
