//go:build knobassert

package knob

// debugAssert panics when a mapping precondition is violated. Enabled with
// the "knobassert" build tag; release builds compile this out and proceed
// with the defined numeric fallbacks.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("knob: " + msg)
	}
}
