// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture derives higher level information from low level pointer
events, such as the click count of successive presses.
*/
package gesture

import (
	"math"
	"time"

	"veltui.org/f32"
	"veltui.org/io/pointer"
)

// DoubleClickInterval is the longest pause between two presses still
// counted as successive clicks.
const DoubleClickInterval = 500 * time.Millisecond

// clickSlop is how far successive presses may drift while still counting
// as clicks on the same spot.
const clickSlop = 3

// Click counts successive presses so that producers can stamp the click
// count into the down events they emit.
type Click struct {
	// Interval overrides DoubleClickInterval when positive.
	Interval time.Duration

	count    uint32
	lastTime time.Duration
	lastPos  f32.Point
	buttons  pointer.Buttons
}

// Count registers the press e, stamps its click count and returns it.
// The count starts at 1 and grows while presses with the same buttons
// stay within the click interval and slop distance.
func (c *Click) Count(e *pointer.DownEvent) uint32 {
	interval := c.Interval
	if interval <= 0 {
		interval = DoubleClickInterval
	}
	if c.count > 0 && e.Time-c.lastTime <= interval &&
		c.buttons == e.Buttons && dist(c.lastPos, e.Position) <= clickSlop {
		c.count++
	} else {
		c.count = 1
	}
	c.lastTime = e.Time
	c.lastPos = e.Position
	c.buttons = e.Buttons
	e.ClickCount = c.count
	return c.count
}

// Reset forgets the press history.
func (c *Click) Reset() {
	c.count = 0
}

func dist(p, q f32.Point) float32 {
	v := p.Sub(q)
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}
