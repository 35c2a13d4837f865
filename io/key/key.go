// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events and the layout-independent
// virtual key identities they carry.
package key

import (
	"strconv"

	"veltui.org/io/event"
)

// VirtualKey identifies a key independent of keyboard layout.
type VirtualKey uint32

// The values through KeyEquals form the legacy key-code table; their
// order must not change.
const (
	KeyNone VirtualKey = iota

	KeyBack
	KeyTab
	KeyClear
	KeyReturn
	KeyPause
	KeyEscape
	KeySpace
	KeyNext
	KeyEnd
	KeyHome

	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPageUp
	KeyPageDown

	KeySelect
	KeyPrint
	KeyEnter
	KeySnapshot
	KeyInsert
	KeyDelete
	KeyHelp

	KeyNumPad0
	KeyNumPad1
	KeyNumPad2
	KeyNumPad3
	KeyNumPad4
	KeyNumPad5
	KeyNumPad6
	KeyNumPad7
	KeyNumPad8
	KeyNumPad9

	KeyMultiply
	KeyAdd
	KeySeparator
	KeySubtract
	KeyDecimal
	KeyDivide
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNumLock
	KeyScroll

	KeyShiftModifier
	KeyControlModifier
	KeyAltModifier

	// KeyEquals is the last entry of the legacy table.
	KeyEquals
)

var keyNames = [...]string{
	"None",
	"Back", "Tab", "Clear", "Return", "Pause", "Escape", "Space", "Next", "End", "Home",
	"Left", "Up", "Right", "Down", "PageUp", "PageDown",
	"Select", "Print", "Enter", "Snapshot", "Insert", "Delete", "Help",
	"NumPad0", "NumPad1", "NumPad2", "NumPad3", "NumPad4",
	"NumPad5", "NumPad6", "NumPad7", "NumPad8", "NumPad9",
	"Multiply", "Add", "Separator", "Subtract", "Decimal", "Divide",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"NumLock", "Scroll",
	"ShiftModifier", "ControlModifier", "AltModifier",
	"Equals",
}

func (k VirtualKey) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "VirtualKey(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Event is a keyboard event.
type Event struct {
	event.ModifierEvent
	// Character is the UTF-16 code unit produced by the key, if any.
	Character uint32
	// Virt is the layout-independent key identity, KeyNone when the
	// key has none.
	Virt VirtualKey
	// IsRepeat marks a key down produced by auto-repeat.
	IsRepeat bool
}

func (e *Event) keyboardEvent() *Event { return e }

// NewEvent returns a keyboard event of type t, which must be KeyDown or
// KeyUp.
func NewEvent(t event.Type) *Event {
	if t != event.KeyDown && t != event.KeyUp {
		panic("key: " + t.String() + " is not a keyboard event type")
	}
	e := new(Event)
	e.Base = event.NewBase(t)
	return e
}

type keyboardCarrier interface {
	keyboardEvent() *Event
}

// AsEvent returns the keyboard view of e, or nil when e is not a
// keyboard event. The returned pointer aliases e and is valid exactly as
// long as e is.
func AsEvent(e event.Event) *Event {
	switch event.TypeOf(e) {
	case event.KeyDown, event.KeyUp:
		if c, ok := e.(keyboardCarrier); ok {
			return c.keyboardEvent()
		}
	}
	return nil
}

// MustEvent is AsEvent for callers that have already established the
// discriminant; it panics when e is not a keyboard event.
func MustEvent(e event.Event) *Event {
	k := AsEvent(e)
	if k == nil {
		panic("key: " + event.TypeOf(e).String() + " is not a keyboard event")
	}
	return k
}
