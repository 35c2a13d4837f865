// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input forwards events through an ordered chain of handlers.

Delivery is strictly sequential: a handler returns before the next one is
invoked, and once a handler consumes an event no later handler sees it.
The Dispatcher also honors the follow-up suppression a press can request:
after a press whose suppression flag is set, move events are swallowed
until the matching release, which is swallowed as well.
*/
package input

import (
	"veltui.org/io/event"
	"veltui.org/io/pointer"
)

// Handler receives events from a Dispatcher.
type Handler interface {
	HandleEvent(e event.Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event.Event)

func (f HandlerFunc) HandleEvent(e event.Event) { f(e) }

// Dispatcher forwards each event to its handlers in registration order.
// It is not safe for concurrent use; events are expected to arrive on a
// single input thread.
type Dispatcher struct {
	handlers []Handler

	ignoreMoveAndUp bool
}

// Add appends h to the chain.
func (d *Dispatcher) Add(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Dispatch forwards e and reports whether it was handled. Swallowed
// follow-up events count as handled even though no handler saw them.
func (d *Dispatcher) Dispatch(e event.Event) bool {
	b := event.BaseOf(e)
	switch b.Type {
	case event.MouseMove:
		if d.ignoreMoveAndUp {
			return true
		}
	case event.MouseUp:
		if d.ignoreMoveAndUp {
			d.ignoreMoveAndUp = false
			return true
		}
	case event.MouseCancel:
		d.ignoreMoveAndUp = false
	}
	for _, h := range d.handlers {
		h.HandleEvent(e)
		if b.Consumed.Bool() {
			break
		}
	}
	if b.Type == event.MouseDown {
		if down := pointer.AsDownEvent(e); down != nil {
			d.ignoreMoveAndUp = down.IgnoreFollowUpEvents()
		}
	}
	return b.Consumed.Bool()
}
