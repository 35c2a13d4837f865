// SPDX-License-Identifier: Unlicense OR MIT

/*
Package legacy converts events to the flat button-state and key-code
encodings used by pre-existing interfaces. The conversions never fail:
inputs outside the legacy range degrade to zero values.
*/
package legacy

import (
	"veltui.org/io/event"
	"veltui.org/io/key"
	"veltui.org/io/pointer"
)

// ButtonState is the flat mask combining pointer buttons, modifier keys
// and the double-click marker.
type ButtonState uint32

const (
	LeftButton ButtonState = 1 << iota
	MiddleButton
	RightButton
	Shift
	Control
	Alt
	Apple
	Button4
	Button5
	DoubleClick
	MouseWheelInverted
	ZoomGestureActive
)

// KeyCode is the flat keyboard encoding: a character, a single-byte
// virtual key and a modifier byte.
type KeyCode struct {
	Character int32
	Virt      byte
	Modifier  byte
}

// Modifier byte bits of KeyCode.
const (
	ModifierShift byte = 1 << iota
	ModifierAlternate
	ModifierCommand
	ModifierControl
)

// ButtonStateFromModifiers folds mods into a ButtonState. Only shift,
// control and alt have button-state equivalents; super is dropped.
func ButtonStateFromModifiers(mods event.Modifiers) ButtonState {
	var state ButtonState
	if mods.Has(event.ModCtrl) {
		state |= Control
	}
	if mods.Has(event.ModShift) {
		state |= Shift
	}
	if mods.Has(event.ModAlt) {
		state |= Alt
	}
	return state
}

// ButtonStateFromPointerEvent folds e's modifiers, buttons and click
// count into a ButtonState. Events outside the pointer family yield
// zero.
func ButtonStateFromPointerEvent(e event.Event) ButtonState {
	pe := pointer.AsEvent(e)
	if pe == nil {
		return 0
	}
	state := ButtonStateFromModifiers(pe.Modifiers)
	if pe.Buttons.Has(pointer.ButtonLeft) {
		state |= LeftButton
	}
	if pe.Buttons.Has(pointer.ButtonRight) {
		state |= RightButton
	}
	if pe.Buttons.Has(pointer.ButtonMiddle) {
		state |= MiddleButton
	}
	if pe.Buttons.Has(pointer.ButtonFourth) {
		state |= Button4
	}
	if pe.Buttons.Has(pointer.ButtonFifth) {
		state |= Button5
	}
	if down := pointer.AsDownEvent(e); down != nil && down.ClickCount > 1 {
		state |= DoubleClick
	}
	return state
}

// VirtualKeyCode returns the single-byte legacy code for k, or 0 when k
// lies outside the legacy table.
func VirtualKeyCode(k key.VirtualKey) byte {
	if k <= key.KeyEquals {
		return byte(k)
	}
	return 0
}

// KeyCodeFromKeyEvent converts e to the flat key-code encoding.
func KeyCodeFromKeyEvent(e *key.Event) KeyCode {
	code := KeyCode{
		Character: int32(e.Character),
		Virt:      VirtualKeyCode(e.Virt),
	}
	if e.Modifiers.Has(event.ModShift) {
		code.Modifier |= ModifierShift
	}
	if e.Modifiers.Has(event.ModAlt) {
		code.Modifier |= ModifierAlternate
	}
	if e.Modifiers.Has(event.ModCtrl) {
		code.Modifier |= ModifierControl
	}
	if e.Modifiers.Has(event.ModSuper) {
		code.Modifier |= ModifierCommand
	}
	return code
}
