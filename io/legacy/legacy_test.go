// SPDX-License-Identifier: Unlicense OR MIT

package legacy

import (
	"testing"

	"veltui.org/f32"
	"veltui.org/io/event"
	"veltui.org/io/key"
	"veltui.org/io/pointer"
)

func TestButtonStateFromModifiers(t *testing.T) {
	var mods event.Modifiers
	mods.Add(event.ModShift)
	mods.Add(event.ModCtrl)
	mods.Add(event.ModAlt)
	mods.Add(event.ModSuper)
	state := ButtonStateFromModifiers(mods)
	if want := Shift | Control | Alt; state != want {
		// Super has no button-state equivalent and must be dropped.
		t.Errorf("got %#x, want %#x", uint32(state), uint32(want))
	}
}

func TestButtonStateFromPointerEvent(t *testing.T) {
	e := pointer.NewDownEvent(f32.Pt(0, 0), pointer.ButtonLeft)
	e.ClickCount = 2
	e.Modifiers.Add(event.ModShift)
	state := ButtonStateFromPointerEvent(e)
	if state&LeftButton == 0 {
		t.Error("left button bit missing")
	}
	if state&DoubleClick == 0 {
		t.Error("double-click bit missing for click count 2")
	}
	if state&Shift == 0 {
		t.Error("shift bit missing")
	}
	if state&(RightButton|MiddleButton|Button4|Button5) != 0 {
		t.Errorf("unexpected button bits in %#x", uint32(state))
	}

	single := pointer.NewDownEvent(f32.Pt(0, 0), pointer.ButtonRight|pointer.ButtonFifth)
	single.ClickCount = 1
	state = ButtonStateFromPointerEvent(single)
	if want := RightButton | Button5; state != want {
		t.Errorf("got %#x, want %#x", uint32(state), uint32(want))
	}
}

func TestButtonStateFromNonPointerEvent(t *testing.T) {
	if state := ButtonStateFromPointerEvent(key.NewEvent(event.KeyDown)); state != 0 {
		t.Errorf("keyboard event folded to %#x", uint32(state))
	}
	if state := ButtonStateFromPointerEvent(event.NoEvent()); state != 0 {
		t.Errorf("placeholder folded to %#x", uint32(state))
	}
}

func TestVirtualKeyCode(t *testing.T) {
	if got := VirtualKeyCode(key.KeyReturn); got != byte(key.KeyReturn) {
		t.Errorf("got %d, want %d", got, byte(key.KeyReturn))
	}
	if got := VirtualKeyCode(key.KeyEquals); got != byte(key.KeyEquals) {
		t.Errorf("got %d, want %d", got, byte(key.KeyEquals))
	}
	// Past the end of the legacy table the sentinel is 0.
	if got := VirtualKeyCode(key.KeyEquals + 1); got != 0 {
		t.Errorf("unmapped key folded to %d", got)
	}
}

func TestKeyCodeFromKeyEvent(t *testing.T) {
	e := key.NewEvent(event.KeyDown)
	e.Character = 'a'
	e.Virt = key.KeyLeft
	e.Modifiers.Add(event.ModShift)
	e.Modifiers.Add(event.ModSuper)

	code := KeyCodeFromKeyEvent(e)
	if code.Character != 'a' {
		t.Errorf("character %d", code.Character)
	}
	if code.Virt != byte(key.KeyLeft) {
		t.Errorf("virt %d", code.Virt)
	}
	if want := ModifierShift | ModifierCommand; code.Modifier != want {
		t.Errorf("modifier %#x, want %#x", code.Modifier, want)
	}
}
