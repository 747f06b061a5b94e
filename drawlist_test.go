package knob_test

import (
	"testing"

	"github.com/elisedemarie/knob"
)

// Expected tessellation for a given radius: int(r*0.8) clamped to [12, 64].
func expectedSegments(radius float32) int {
	n := int(radius * 0.8)
	if n < 12 {
		n = 12
	}
	if n > 64 {
		n = 64
	}
	return n
}

func TestAddCircleFilledGeometry(t *testing.T) {
	for _, radius := range []float32{5, 20, 200} {
		dl := knob.AcquireDrawList()
		dl.AddCircleFilled(100, 100, radius, knob.ColorWhite)

		segments := expectedSegments(radius)
		wantVtx := 1 + segments + 1 // center + closed rim
		wantIdx := 3 * segments

		if len(dl.VtxBuffer) != wantVtx {
			t.Errorf("radius %v: got %d vertices, want %d", radius, len(dl.VtxBuffer), wantVtx)
		}
		if len(dl.IdxBuffer) != wantIdx {
			t.Errorf("radius %v: got %d indices, want %d", radius, len(dl.IdxBuffer), wantIdx)
		}
		knob.ReleaseDrawList(dl)
	}
}

func TestAddCircleGeometry(t *testing.T) {
	dl := knob.AcquireDrawList()
	defer knob.ReleaseDrawList(dl)

	radius := float32(20)
	dl.AddCircle(100, 100, radius, knob.ColorWhite, 2)

	segments := expectedSegments(radius)
	wantVtx := 2 * (segments + 1) // inner and outer ring edge per point
	wantIdx := 6 * segments

	if len(dl.VtxBuffer) != wantVtx {
		t.Errorf("got %d vertices, want %d", len(dl.VtxBuffer), wantVtx)
	}
	if len(dl.IdxBuffer) != wantIdx {
		t.Errorf("got %d indices, want %d", len(dl.IdxBuffer), wantIdx)
	}
}

func TestTransparentPrimitivesSkipped(t *testing.T) {
	dl := knob.AcquireDrawList()
	defer knob.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, knob.ColorTransparent)
	dl.AddCircle(5, 5, 4, knob.ColorTransparent, 1)
	dl.AddCircleFilled(5, 5, 4, knob.ColorTransparent)
	dl.AddLine(0, 0, 10, 10, knob.ColorTransparent, 1)

	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 {
		t.Errorf("transparent primitives emitted geometry: %d vertices, %d indices",
			len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
}

func TestZeroRadiusCircleSkipped(t *testing.T) {
	dl := knob.AcquireDrawList()
	defer knob.ReleaseDrawList(dl)

	dl.AddCircle(5, 5, 0, knob.ColorWhite, 1)
	dl.AddCircleFilled(5, 5, -1, knob.ColorWhite)

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("degenerate circles emitted %d vertices", len(dl.VtxBuffer))
	}
}
