package core

import "testing"

func TestInputStateEdges(t *testing.T) {
	in := NewInputState()

	in.BeginFrame()
	in.Press(ActionJump)
	if !in.Held(ActionJump) {
		t.Error("Held(Jump) should be true after Press")
	}
	if !in.JustPressed(ActionJump) {
		t.Error("JustPressed(Jump) should be true on the press frame")
	}

	// Still held next frame: no new edge
	in.BeginFrame()
	if in.JustPressed(ActionJump) {
		t.Error("JustPressed(Jump) should be false while held")
	}
	if !in.Held(ActionJump) {
		t.Error("Held(Jump) should stay true until released")
	}

	in.BeginFrame()
	in.Release(ActionJump)
	if !in.JustReleased(ActionJump) {
		t.Error("JustReleased(Jump) should be true on the release frame")
	}
	if in.Held(ActionJump) {
		t.Error("Held(Jump) should be false after Release")
	}

	in.BeginFrame()
	if in.JustReleased(ActionJump) {
		t.Error("JustReleased(Jump) should only last one frame")
	}
}

func TestInputStateActionsAreIndependent(t *testing.T) {
	in := NewInputState()
	in.BeginFrame()
	in.Press(ActionBack)

	if in.Held(ActionJump) || in.JustPressed(ActionConfirm) {
		t.Error("pressing Back must not affect other actions")
	}
}

func TestInputStateIgnoresInvalidActions(t *testing.T) {
	in := NewInputState()
	in.Press(ActionNone)
	in.Press(Action(99))

	if in.Held(ActionNone) || in.Held(Action(99)) {
		t.Error("invalid actions should never be held")
	}
}

func TestInputStateReset(t *testing.T) {
	in := NewInputState()
	in.Press(ActionPause)
	in.BeginFrame()
	in.Reset()

	if in.Held(ActionPause) || in.JustReleased(ActionPause) {
		t.Error("Reset should clear both current and previous state")
	}
}

func TestEventHas(t *testing.T) {
	ev := KeyDown(" ", ActionConfirm, ActionJump)

	if ev.Kind != EventKeyDown {
		t.Errorf("Kind = %v, expected EventKeyDown", ev.Kind)
	}
	if !ev.Has(ActionJump) || !ev.Has(ActionConfirm) {
		t.Error("event should carry both bound actions")
	}
	if ev.Has(ActionBack) {
		t.Error("event should not carry unbound actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(42).String() != "Unknown" {
		t.Errorf("Action(42).String() = %q", Action(42).String())
	}
}
