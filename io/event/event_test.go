// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestConsumeState(t *testing.T) {
	var c ConsumeState
	if c.Bool() {
		t.Error("zero state reads as handled")
	}
	c.Set(true)
	if !c.Bool() {
		t.Error("handled bit not set")
	}
	c.Set(false)
	if c.Bool() {
		t.Error("handled bit not cleared")
	}

	// A variant flag above ConsumeLast must survive boolean updates.
	const flag ConsumeState = 1 << ConsumeLast
	c |= flag
	c.Set(true)
	if c&flag == 0 {
		t.Error("Set(true) clobbered the variant flag")
	}
	c.Set(false)
	if c&flag == 0 {
		t.Error("Set(false) clobbered the variant flag")
	}
	if c.Bool() {
		t.Error("variant flag leaks into the handled state")
	}
	c.Reset()
	if c != NotHandled {
		t.Errorf("Reset left state %#x", uint32(c))
	}
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	if !m.Empty() {
		t.Error("zero Modifiers not empty")
	}
	m.Add(ModShift)
	if !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("after Add(Shift): %s", m)
	}
	if !m.Is(ModShift) {
		t.Error("single shift is not exclusively shift")
	}
	m.Add(ModCtrl)
	if m.Is(ModShift) {
		t.Error("shift+ctrl reported as exclusively shift")
	}
	if !m.Is(ModShift, ModCtrl) {
		t.Error("shift+ctrl not exclusively {shift, ctrl}")
	}
	m.Remove(ModShift)
	if m.Has(ModShift) || !m.Has(ModCtrl) {
		t.Errorf("after Remove(Shift): %s", m)
	}
	m.Set(ModSuper)
	if !m.Is(ModSuper) {
		t.Errorf("after Set(Super): %s", m)
	}
	m.Clear()
	if !m.Empty() {
		t.Errorf("after Clear: %s", m)
	}
}

func TestModifiersString(t *testing.T) {
	var m Modifiers
	m.Add(ModShift)
	m.Add(ModSuper)
	if got, want := m.String(), "Shift|Super"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewBase(t *testing.T) {
	b1 := NewBase(MouseDown)
	b2 := NewBase(KeyUp)
	if b1.Type != MouseDown || b2.Type != KeyUp {
		t.Errorf("types %s, %s", b1.Type, b2.Type)
	}
	if b1.ID == b2.ID {
		t.Error("event IDs collide")
	}
	if b1.Consumed.Bool() {
		t.Error("fresh event already consumed")
	}
}

func TestNoEvent(t *testing.T) {
	e := NoEvent()
	if TypeOf(e) != Unknown {
		t.Errorf("placeholder type %s", TypeOf(e))
	}
	if Consumed(e) {
		t.Error("placeholder starts consumed")
	}
	Consume(e)
	if Consumed(NoEvent()) {
		t.Error("consuming one placeholder leaked into another")
	}
}

func TestTypeString(t *testing.T) {
	names := map[Type]string{
		Unknown:     "Unknown",
		MouseDown:   "MouseDown",
		MouseMove:   "MouseMove",
		MouseUp:     "MouseUp",
		MouseCancel: "MouseCancel",
		MouseEnter:  "MouseEnter",
		MouseExit:   "MouseExit",
		MouseWheel:  "MouseWheel",
		ZoomGesture: "ZoomGesture",
		KeyUp:       "KeyUp",
		KeyDown:     "KeyDown",
	}
	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
