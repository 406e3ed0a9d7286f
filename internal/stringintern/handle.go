package stringintern

// Handle is an opaque reference-counted reference to an interned
// string. Construction (via Engine.Str or Clone) increments the
// backing record's count; Release decrements it. A zero Handle (no
// record) is only valid transiently and must not be used for Text or
// equality.
//
// Handle is a plain comparable struct rather than a pointer so it can
// be used directly as a map key or compared with ==; by the interning
// invariant, handle equality coincides with content equality as long
// as both handles came from the same engine.
type Handle struct {
	engine *Engine
	rec    *record
}

// Text returns the interned bytes this handle refers to.
func (h Handle) Text() string {
	return h.rec.text
}

// Valid reports whether the handle currently refers to a live record.
func (h Handle) Valid() bool {
	return h.rec != nil
}

// Clone creates a new reference to the same record, incrementing its
// count.
func (h Handle) Clone() Handle {
	h.rec.reference()
	return Handle{engine: h.engine, rec: h.rec}
}

// Release decrements the record's reference count, erasing the record
// from its engine if this was the last live reference. Using the
// handle after calling Release is undefined.
func (h Handle) Release() {
	h.rec.dereference(h.engine)
}

// Equal reports content equality between two handles. Two handles
// from the same engine are equal iff they reference the same record;
// the interning invariant guarantees that coincides with byte-equal
// content.
func (h Handle) Equal(other Handle) bool {
	return h.rec == other.rec
}
