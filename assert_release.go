//go:build !knobassert

package knob

// debugAssert is a no-op unless built with the "knobassert" tag.
func debugAssert(bool, string) {}
