package tui

import (
	"testing"

	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(3)
	h.Press(core.ActionRight)

	for i := 0; i < 3; i++ {
		if !h.Frame().Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
		h.Tick()
	}

	if h.Frame().Has(core.ActionRight) {
		t.Error("right should have expired")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := newHeldKeys(2)
	h.Press(core.ActionUp)
	h.Tick()
	h.Press(core.ActionUp)
	h.Tick()

	if !h.Frame().Has(core.ActionUp) {
		t.Error("repeat press should refresh the hold window")
	}
}

func TestHeldKeysOppositeReleased(t *testing.T) {
	h := newHeldKeys(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	in := h.Frame()
	if in.Has(core.ActionLeft) {
		t.Error("left should be released by pressing right")
	}
	if !in.Has(core.ActionRight) || !in.Has(core.ActionUp) {
		t.Error("right and up should be held together")
	}
}

func TestHeldKeysReset(t *testing.T) {
	h := newHeldKeys(10)
	h.Press(core.ActionDown)
	h.Press(core.ActionLeft)
	h.Reset()

	in := h.Frame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if in.Has(a) {
			t.Errorf("Frame() still holds %v after Reset", a)
		}
	}
}
