package tui

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

// heldKeys approximates continuous key state from key-down events.
//
// Terminals report no key-up, only auto-repeated presses. A press keeps its
// action held for a number of ticks; repeats refresh the countdown, so a key
// held down stays active and a released key expires shortly after.
type heldKeys struct {
	active mapset.Set[core.Action]
	ttl    map[core.Action]int
	hold   int
}

// opposite pairs directions that cancel each other on a fresh press.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

func newHeldKeys(holdTicks int) *heldKeys {
	return &heldKeys{
		active: mapset.New[core.Action](),
		ttl:    make(map[core.Action]int),
		hold:   max(holdTicks, 1),
	}
}

// Press marks a as held for the hold window. Pressing a direction releases
// its opposite, since the player cannot be holding both after switching.
func (h *heldKeys) Press(a core.Action) {
	if o, ok := opposite[a]; ok {
		h.release(o)
	}
	h.active.Put(a)
	h.ttl[a] = h.hold
}

// Frame returns the actions held during the current tick.
func (h *heldKeys) Frame() core.InputFrame {
	in := core.NewInputFrame()
	h.active.Each(func(a core.Action) {
		in.Set(a)
	})
	return in
}

// Tick counts down every held action and drops the expired ones.
func (h *heldKeys) Tick() {
	for a, n := range h.ttl {
		if n <= 1 {
			h.release(a)
			continue
		}
		h.ttl[a] = n - 1
	}
}

// Reset releases everything.
func (h *heldKeys) Reset() {
	for a := range h.ttl {
		h.release(a)
	}
}

func (h *heldKeys) release(a core.Action) {
	h.active.Remove(a)
	delete(h.ttl, a)
}
