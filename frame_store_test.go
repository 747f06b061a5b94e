package knob_test

import (
	"testing"

	"github.com/elisedemarie/knob"
)

func TestFrameStoreGetDefault(t *testing.T) {
	store := knob.NewFrameStore[int]()

	v := store.Get(knob.ID(1), 42)
	if *v != 42 {
		t.Errorf("got %d, want default 42", *v)
	}
	if store.Len() != 1 {
		t.Errorf("got %d entries, want 1", store.Len())
	}

	// Mutations through the pointer must stick.
	*v = 7
	if got := store.Get(knob.ID(1), 42); *got != 7 {
		t.Errorf("got %d after mutation, want 7", *got)
	}

	if store.GetIfExists(knob.ID(2)) != nil {
		t.Error("GetIfExists returned state for an unknown ID")
	}
}

func TestFrameStoreStaleCleanup(t *testing.T) {
	store := knob.NewFrameStore[string]()
	store.Get(knob.ID(1), "drag")

	// An entry survives the frame it was touched in plus one idle frame.
	knob.NextFrame()
	if store.Len() != 1 {
		t.Fatalf("entry dropped after one frame, Len = %d", store.Len())
	}

	knob.NextFrame()
	if store.Len() != 0 {
		t.Errorf("stale entry survived, Len = %d", store.Len())
	}
}

func TestFrameStoreAccessKeepsAlive(t *testing.T) {
	store := knob.NewFrameStore[int]()

	for i := 0; i < 5; i++ {
		store.Get(knob.ID(9), 0)
		knob.NextFrame()
	}
	if store.Len() != 1 {
		t.Errorf("entry accessed every frame was dropped, Len = %d", store.Len())
	}
}

func TestFrameStoreSetDelete(t *testing.T) {
	store := knob.NewFrameStore[float32]()

	store.Set(knob.ID(3), 0.5)
	if v := store.GetIfExists(knob.ID(3)); v == nil || *v != 0.5 {
		t.Fatalf("GetIfExists after Set = %v", v)
	}

	store.Delete(knob.ID(3))
	if store.GetIfExists(knob.ID(3)) != nil {
		t.Error("entry still present after Delete")
	}
}
