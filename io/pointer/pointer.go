// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements the mouse event family: presses, motion,
releases, enter/exit, cancellation, wheel scrolling and continuous
gestures, together with the button set they carry.

Events are created through the New constructors, which fix the
discriminant, and recovered from a generic event reference through the
As and Must casts.
*/
package pointer

import (
	"strconv"
	"strings"

	"veltui.org/f32"
	"veltui.org/io/event"
)

// Buttons is a set of mouse buttons. Bit 0 is left unused so that the
// indexed buttons of IsOther start at 1.
type Buttons uint32

const (
	// ButtonLeft is the primary button.
	ButtonLeft Buttons = 1 << (iota + 1)
	// ButtonMiddle is usually the wheel button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	ButtonFourth
	ButtonFifth
)

// Has reports whether every button in b2 is in the set.
func (b Buttons) Has(b2 Buttons) bool {
	return b&b2 == b2 && b2 != 0
}

// Is reports whether the set holds exactly the buttons in b2.
func (b Buttons) Is(b2 Buttons) bool {
	return b == b2
}

// IsLeft reports whether the left button is pressed exclusively.
func (b Buttons) IsLeft() bool {
	return b == ButtonLeft
}

// IsMiddle reports whether the middle button is pressed exclusively.
func (b Buttons) IsMiddle() bool {
	return b == ButtonMiddle
}

// IsRight reports whether the right button is pressed exclusively.
func (b Buttons) IsRight() bool {
	return b == ButtonRight
}

// IsOther reports whether the button at bit index is pressed
// exclusively.
func (b Buttons) IsOther(index uint32) bool {
	return b == 1<<index
}

// Empty reports whether no button is pressed.
func (b Buttons) Empty() bool {
	return b == 0
}

// Add puts the buttons in b2 into the set.
func (b *Buttons) Add(b2 Buttons) {
	*b |= b2
}

// Remove takes the buttons in b2 out of the set.
func (b *Buttons) Remove(b2 Buttons) {
	*b &^= b2
}

// Set replaces the set with b2.
func (b *Buttons) Set(b2 Buttons) {
	*b = b2
}

// Clear empties the set.
func (b *Buttons) Clear() {
	*b = 0
}

func (b Buttons) String() string {
	var strs []string
	for i := uint32(1); i < 32; i++ {
		if b&(1<<i) == 0 {
			continue
		}
		switch Buttons(1 << i) {
		case ButtonLeft:
			strs = append(strs, "Left")
		case ButtonMiddle:
			strs = append(strs, "Middle")
		case ButtonRight:
			strs = append(strs, "Right")
		case ButtonFourth:
			strs = append(strs, "Fourth")
		case ButtonFifth:
			strs = append(strs, "Fifth")
		default:
			strs = append(strs, "Button"+strconv.Itoa(int(i)))
		}
	}
	return strings.Join(strs, "|")
}

// Event is the shape shared by every button-bearing pointer event.
type Event struct {
	event.PositionEvent
	// Buttons pressed when the event was produced.
	Buttons Buttons
}

func (e *Event) pointerEvent() *Event { return e }

// EnterEvent reports the pointer entering a receiver.
type EnterEvent struct {
	Event
}

// NewEnterEvent returns an enter event at pos with the given buttons and
// modifiers.
func NewEnterEvent(pos f32.Point, buttons Buttons, mods event.Modifiers) *EnterEvent {
	e := new(EnterEvent)
	e.Base = event.NewBase(event.MouseEnter)
	e.Position = pos
	e.Buttons = buttons
	e.Modifiers = mods
	return e
}

// ExitEvent reports the pointer leaving a receiver.
type ExitEvent struct {
	Event
}

// NewExitEvent returns an exit event at pos with the given buttons and
// modifiers.
func NewExitEvent(pos f32.Point, buttons Buttons, mods event.Modifiers) *ExitEvent {
	e := new(ExitEvent)
	e.Base = event.NewBase(event.MouseExit)
	e.Position = pos
	e.Buttons = buttons
	e.Modifiers = mods
	return e
}

// ignoreFollowUpBit lives above the consume state's Handled bit and
// survives boolean consume updates.
const ignoreFollowUpBit event.ConsumeState = 1 << event.ConsumeLast

// DownEvent reports a button press.
//
// MoveEvent and UpEvent share its shape: the click count and the
// follow-up suppression flag are meaningful for presses only but stay in
// the shared shape for compatibility with existing receivers.
type DownEvent struct {
	Event
	// ClickCount is the number of successive clicks this press belongs
	// to: 1 for a single click, 2 for a double click. Zero when the
	// producer does not count clicks.
	ClickCount uint32
}

func (e *DownEvent) downEvent() *DownEvent { return e }

// NewDownEvent returns a press at pos with the given buttons.
func NewDownEvent(pos f32.Point, buttons Buttons) *DownEvent {
	e := new(DownEvent)
	e.Base = event.NewBase(event.MouseDown)
	e.Position = pos
	e.Buttons = buttons
	return e
}

// SetIgnoreFollowUpEvents asks the dispatcher to swallow the move and up
// events following this press. The flag is stored next to the consume
// state but is independent of it.
func (e *DownEvent) SetIgnoreFollowUpEvents(ignore bool) {
	if ignore {
		e.Consumed |= ignoreFollowUpBit
	} else {
		e.Consumed &^= ignoreFollowUpBit
	}
}

// IgnoreFollowUpEvents reports whether the follow-up move and up events
// should be swallowed.
func (e *DownEvent) IgnoreFollowUpEvents() bool {
	return e.Consumed&ignoreFollowUpBit != 0
}

// MoveEvent reports pointer motion.
type MoveEvent struct {
	DownEvent
}

// NewMoveEvent returns a move event at pos with the given buttons.
func NewMoveEvent(pos f32.Point, buttons Buttons) *MoveEvent {
	e := new(MoveEvent)
	e.Base = event.NewBase(event.MouseMove)
	e.Position = pos
	e.Buttons = buttons
	return e
}

// UpEvent reports a button release.
type UpEvent struct {
	DownEvent
}

// NewUpEvent returns a release at pos with the given buttons.
func NewUpEvent(pos f32.Point, buttons Buttons) *UpEvent {
	e := new(UpEvent)
	e.Base = event.NewBase(event.MouseUp)
	e.Position = pos
	e.Buttons = buttons
	return e
}

// CancelEvent tells receivers to abandon the pointer sequence in
// progress, for example because the system took over the pointer.
type CancelEvent struct {
	event.Base
}

// NewCancelEvent returns a cancel event.
func NewCancelEvent() *CancelEvent {
	e := new(CancelEvent)
	e.Base = event.NewBase(event.MouseCancel)
	return e
}

// WheelFlags describe how wheel deltas were produced.
type WheelFlags uint32

const (
	// WheelDirectionInverted marks deltas inverted by the device.
	WheelDirectionInverted WheelFlags = 1 << iota
	// WheelPreciseDeltas marks a precise scroll event whose deltas
	// arrive multiplied by 0.1; dividing by 0.1 recovers exact pixel
	// movement.
	WheelPreciseDeltas
)

// WheelEvent reports scrolling.
type WheelEvent struct {
	event.PositionEvent
	// Delta is the signed scroll amount along each axis.
	Delta f32.Point
	Flags WheelFlags
}

// NewWheelEvent returns a wheel event at pos scrolling by delta.
func NewWheelEvent(pos, delta f32.Point) *WheelEvent {
	e := new(WheelEvent)
	e.Base = event.NewBase(event.MouseWheel)
	e.Position = pos
	e.Delta = delta
	return e
}

// Phase is the stage of a continuous gesture.
type Phase uint32

const (
	PhaseUnknown Phase = iota
	PhaseBegin
	PhaseChanged
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseUnknown:
		return "Unknown"
	case PhaseBegin:
		return "Begin"
	case PhaseChanged:
		return "Changed"
	case PhaseEnd:
		return "End"
	default:
		panic("unknown Phase")
	}
}

// GestureEvent is the shape shared by continuous pointer gestures.
type GestureEvent struct {
	event.PositionEvent
	Phase Phase
}

// ZoomEvent reports a pinch zoom gesture.
type ZoomEvent struct {
	GestureEvent
	// Zoom is the scale factor relative to the start of the gesture.
	Zoom float64
}

// NewZoomEvent returns a zoom event at pos in the given phase.
func NewZoomEvent(pos f32.Point, phase Phase, zoom float64) *ZoomEvent {
	e := new(ZoomEvent)
	e.Base = event.NewBase(event.ZoomGesture)
	e.Position = pos
	e.Phase = phase
	e.Zoom = zoom
	return e
}

type pointerCarrier interface {
	pointerEvent() *Event
}

type downCarrier interface {
	downEvent() *DownEvent
}

// AsEvent returns the button-bearing view of e, or nil when e is not a
// pointer event. The returned pointer aliases e and is valid exactly as
// long as e is.
func AsEvent(e event.Event) *Event {
	switch event.TypeOf(e) {
	case event.MouseDown, event.MouseMove, event.MouseUp, event.MouseEnter, event.MouseExit:
		if c, ok := e.(pointerCarrier); ok {
			return c.pointerEvent()
		}
	}
	return nil
}

// AsDownEvent returns the press-shaped view of e, or nil when e is not a
// press, move or release. The returned pointer aliases e.
func AsDownEvent(e event.Event) *DownEvent {
	switch event.TypeOf(e) {
	case event.MouseDown, event.MouseMove, event.MouseUp:
		if c, ok := e.(downCarrier); ok {
			return c.downEvent()
		}
	}
	return nil
}

// The Must casts are for callers that have already established the
// discriminant, typically right after a switch on it; they panic on a
// mismatch.

// MustEvent returns the button-bearing view of e.
func MustEvent(e event.Event) *Event {
	p := AsEvent(e)
	if p == nil {
		panic("pointer: " + event.TypeOf(e).String() + " is not a pointer event")
	}
	return p
}

// MustDownEvent returns e as a press.
func MustDownEvent(e event.Event) *DownEvent {
	if t := event.TypeOf(e); t != event.MouseDown {
		panic("pointer: " + t.String() + " is not a press")
	}
	return e.(*DownEvent)
}

// MustMoveEvent returns e as a move event.
func MustMoveEvent(e event.Event) *MoveEvent {
	if t := event.TypeOf(e); t != event.MouseMove {
		panic("pointer: " + t.String() + " is not a move event")
	}
	return e.(*MoveEvent)
}

// MustUpEvent returns e as a release.
func MustUpEvent(e event.Event) *UpEvent {
	if t := event.TypeOf(e); t != event.MouseUp {
		panic("pointer: " + t.String() + " is not a release")
	}
	return e.(*UpEvent)
}

// MustEnterEvent returns e as an enter event.
func MustEnterEvent(e event.Event) *EnterEvent {
	if t := event.TypeOf(e); t != event.MouseEnter {
		panic("pointer: " + t.String() + " is not an enter event")
	}
	return e.(*EnterEvent)
}

// MustExitEvent returns e as an exit event.
func MustExitEvent(e event.Event) *ExitEvent {
	if t := event.TypeOf(e); t != event.MouseExit {
		panic("pointer: " + t.String() + " is not an exit event")
	}
	return e.(*ExitEvent)
}

// MustCancelEvent returns e as a cancel event.
func MustCancelEvent(e event.Event) *CancelEvent {
	if t := event.TypeOf(e); t != event.MouseCancel {
		panic("pointer: " + t.String() + " is not a cancel event")
	}
	return e.(*CancelEvent)
}

// MustWheelEvent returns e as a wheel event.
func MustWheelEvent(e event.Event) *WheelEvent {
	if t := event.TypeOf(e); t != event.MouseWheel {
		panic("pointer: " + t.String() + " is not a wheel event")
	}
	return e.(*WheelEvent)
}

// MustZoomEvent returns e as a zoom event.
func MustZoomEvent(e event.Event) *ZoomEvent {
	if t := event.TypeOf(e); t != event.ZoomGesture {
		panic("pointer: " + t.String() + " is not a zoom event")
	}
	return e.(*ZoomEvent)
}
