// Package stringintern implements Rebar's universal-reference string
// engine: identical strings are tied to a single heap-resident record,
// reference-counted so the record is erased the instant nothing holds
// it any longer.
package stringintern

import "github.com/rebar-lang/rebar/internal/rebardebug"

// record is the interned, reference-counted storage for one distinct
// byte sequence. Its address is stable for as long as any Handle
// references it, which lets tokens and handles hold a raw pointer
// instead of re-resolving through the engine's map on every access.
type record struct {
	text  string
	count uint64
}

// reference increments the record's count. Called whenever a new
// Handle is constructed or cloned against this record.
func (r *record) reference() {
	r.count++
	if rebardebug.StringReferenceMessagesEnabled() {
		rebardebug.Log("string referenced", rebardebug.Fields{
			"text":  r.text,
			"count": r.count,
		})
	}
}

// dereference decrements the record's count and erases it from the
// owning engine once the count reaches zero.
func (r *record) dereference(e *Engine) {
	r.count--
	if r.count == 0 {
		if rebardebug.StringReferenceMessagesEnabled() {
			rebardebug.Log("string dereferenced and erased", rebardebug.Fields{
				"text": r.text,
			})
		}
		e.erase(r.text)
		return
	}
	if rebardebug.StringReferenceMessagesEnabled() {
		rebardebug.Log("string dereferenced", rebardebug.Fields{
			"text":  r.text,
			"count": r.count,
		})
	}
}
