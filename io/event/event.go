// SPDX-License-Identifier: Unlicense OR MIT

/*
Package event defines the contract shared by every input event: the
discriminant that identifies the concrete variant, the fields common to
all events, the consume state that stops propagation, and the casts that
recover a concrete view from a generic event reference.

Concrete events embed Base, directly or through one of the intermediate
shapes, and travel through dispatch as the Event interface. An event is a
single logical occurrence, not a value to duplicate: it is passed by
pointer and must not be retained past the dispatch call. A handler that
needs data afterwards copies out the fields it needs, never the event.
*/
package event

import (
	"strings"
	"sync/atomic"
	"time"

	"veltui.org/f32"
)

// Type discriminates the concrete variant of an event. Every constructor
// fixes it and it never changes afterwards.
type Type uint32

// The order of these values is fixed; the As and Must cast families and
// the legacy bridging check contiguous ranges of it.
const (
	Unknown Type = iota
	MouseDown
	MouseMove
	MouseUp
	MouseCancel
	MouseEnter
	MouseExit
	MouseWheel
	ZoomGesture
	KeyUp
	KeyDown
)

func (t Type) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case MouseDown:
		return "MouseDown"
	case MouseMove:
		return "MouseMove"
	case MouseUp:
		return "MouseUp"
	case MouseCancel:
		return "MouseCancel"
	case MouseEnter:
		return "MouseEnter"
	case MouseExit:
		return "MouseExit"
	case MouseWheel:
		return "MouseWheel"
	case ZoomGesture:
		return "ZoomGesture"
	case KeyUp:
		return "KeyUp"
	case KeyDown:
		return "KeyDown"
	default:
		panic("unknown Type")
	}
}

// ConsumeState records whether a handler has claimed an event. The
// dispatch loop stops forwarding an event once its Handled bit is set.
//
// Bits from ConsumeLast upward are reserved for event variants to stash
// private flags next to the consume state; Set leaves them untouched.
type ConsumeState uint32

const (
	NotHandled ConsumeState = 0
	Handled    ConsumeState = 1

	// ConsumeLast is the first bit index free for variant flags.
	ConsumeLast = 2
)

// Set sets or clears the Handled bit. Variant flag bits survive.
func (c *ConsumeState) Set(handled bool) {
	if handled {
		*c |= Handled
	} else {
		*c &^= Handled
	}
}

// Bool reports whether the Handled bit is set.
func (c ConsumeState) Bool() bool {
	return c&Handled != 0
}

// Reset clears the state, variant flag bits included.
func (c *ConsumeState) Reset() {
	*c = NotHandled
}

// Base holds the fields common to every event.
type Base struct {
	// Type identifies the concrete variant.
	Type Type
	// ID is unique per constructed event.
	ID uint64
	// Time is when the producer observed the event. The timestamp is
	// monotonic and relative to an undefined base.
	Time time.Duration
	// Consumed stops further propagation once its Handled bit is set.
	Consumed ConsumeState
}

func (b *Base) base() *Base { return b }

// Event is the generic reference to an input event. Only types embedding
// Base implement it; the hierarchy is closed.
type Event interface {
	base() *Base
}

var lastID uint64

// NewBase returns the shared fields for a fresh event of type t.
func NewBase(t Type) Base {
	return Base{Type: t, ID: atomic.AddUint64(&lastID, 1)}
}

// BaseOf returns the fields shared by every event. The returned pointer
// aliases e.
func BaseOf(e Event) *Base {
	return e.base()
}

// TypeOf returns e's discriminant.
func TypeOf(e Event) Type {
	return e.base().Type
}

// Consumed reports whether a handler has claimed e.
func Consumed(e Event) bool {
	return e.base().Consumed.Bool()
}

// Consume marks e as claimed, stopping further propagation.
func Consume(e Event) {
	e.base().Consumed.Set(true)
}

// NoEvent returns a placeholder of type Unknown for call sites that need
// a non-nil Event. Every call returns a distinct placeholder.
func NoEvent() Event {
	return &Base{}
}

// ModifierKey is a single keyboard modifier key.
type ModifierKey uint32

const (
	// ModShift is the left or right shift key.
	ModShift ModifierKey = 1 << iota
	// ModAlt is the alternate key, or the option key on Apple
	// keyboards.
	ModAlt
	// ModCtrl is the control key, or the command key on Apple
	// keyboards.
	ModCtrl
	// ModSuper is the "logo" key: control on Apple keyboards, the
	// Windows logo on Windows, super elsewhere.
	ModSuper
)

// Modifiers is a set of modifier keys.
type Modifiers uint32

// Empty reports whether no modifier key is set.
func (m Modifiers) Empty() bool {
	return m == 0
}

// Has reports whether k is in the set.
func (m Modifiers) Has(k ModifierKey) bool {
	return uint32(m)&uint32(k) != 0
}

// Is reports whether the set holds exactly keys and nothing else.
func (m Modifiers) Is(keys ...ModifierKey) bool {
	var want uint32
	for _, k := range keys {
		want |= uint32(k)
	}
	return uint32(m) == want
}

// Add puts k into the set.
func (m *Modifiers) Add(k ModifierKey) {
	*m |= Modifiers(k)
}

// Remove takes k out of the set.
func (m *Modifiers) Remove(k ModifierKey) {
	*m &^= Modifiers(k)
}

// Set replaces the set with the single key k.
func (m *Modifiers) Set(k ModifierKey) {
	*m = Modifiers(k)
}

// Clear empties the set.
func (m *Modifiers) Clear() {
	*m = 0
}

func (m Modifiers) String() string {
	var strs []string
	if m.Has(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Has(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Has(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Has(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "|")
}

// ModifierEvent is the shape of every event that carries the active
// modifier keys.
type ModifierEvent struct {
	Base
	// Modifiers active when the event was produced.
	Modifiers Modifiers
}

func (e *ModifierEvent) modifierEvent() *ModifierEvent { return e }

// PositionEvent is the shape of every event that happens at a position.
type PositionEvent struct {
	ModifierEvent
	// Position in device-independent coordinates, local to the
	// receiver.
	Position f32.Point
}

func (e *PositionEvent) positionEvent() *PositionEvent { return e }

type modifierCarrier interface {
	modifierEvent() *ModifierEvent
}

type positionCarrier interface {
	positionEvent() *PositionEvent
}

// AsModifierEvent returns the modifier-bearing view of e, or nil when
// e's type carries no modifiers. The returned pointer aliases e and is
// valid exactly as long as e is.
func AsModifierEvent(e Event) *ModifierEvent {
	switch TypeOf(e) {
	case KeyDown, KeyUp, MouseWheel, MouseDown, MouseMove, MouseUp:
		if c, ok := e.(modifierCarrier); ok {
			return c.modifierEvent()
		}
	}
	return nil
}

// AsPositionEvent returns the position-bearing view of e, or nil when
// e's type carries no position. The returned pointer aliases e.
func AsPositionEvent(e Event) *PositionEvent {
	switch TypeOf(e) {
	case ZoomGesture, MouseWheel, MouseDown, MouseMove, MouseUp, MouseEnter, MouseExit:
		if c, ok := e.(positionCarrier); ok {
			return c.positionEvent()
		}
	}
	return nil
}

// MustPositionEvent is AsPositionEvent for callers that have already
// established the type, typically right after a switch on the
// discriminant. It panics when e carries no position.
func MustPositionEvent(e Event) *PositionEvent {
	p := AsPositionEvent(e)
	if p == nil {
		panic("event: " + TypeOf(e).String() + " carries no position")
	}
	return p
}
