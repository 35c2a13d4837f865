// SPDX-License-Identifier: Unlicense OR MIT

// Command evtap puts the controlling terminal in raw mode, translates
// its input into keyboard events and prints what a dispatch chain
// receives. It is a minimal producer backend: it stamps timestamps,
// derives modifiers and virtual keys, and forwards everything through an
// input.Dispatcher. Press escape to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"veltui.org/io/event"
	"veltui.org/io/input"
	"veltui.org/io/key"
	"veltui.org/io/legacy"
)

func main() {
	printLegacy := flag.Bool("legacy", false, "also print the legacy key-code encoding")
	flag.Parse()

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		log.Fatal("evtap: stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("evtap: %v", err)
	}
	defer term.Restore(fd, oldState)

	var d input.Dispatcher
	d.Add(input.HandlerFunc(func(e event.Event) {
		ke := key.AsEvent(e)
		if ke == nil {
			return
		}
		fmt.Printf("%s id=%d t=%s virt=%s char=%q mods=%s\r\n",
			event.TypeOf(e), event.BaseOf(e).ID, ke.Time,
			ke.Virt, rune(ke.Character), ke.Modifiers)
		if *printLegacy {
			kc := legacy.KeyCodeFromKeyEvent(ke)
			fmt.Printf("  legacy virt=%d modifier=%#x\r\n", kc.Virt, kc.Modifier)
		}
		event.Consume(e)
	}))

	start := time.Now()
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		for _, ke := range parseKeys(buf[:n]) {
			ke.Time = time.Since(start)
			d.Dispatch(ke)
			if ke.Virt == key.KeyEscape {
				return
			}
		}
	}
}

// parseKeys translates raw terminal bytes into key-down events. It
// understands the common CSI sequences for arrows and home/end, control
// characters and plain printable input.
func parseKeys(b []byte) []*key.Event {
	var evs []*key.Event
	for i := 0; i < len(b); i++ {
		c := b[i]
		e := key.NewEvent(event.KeyDown)
		switch {
		case c == 0x1b && i+2 < len(b) && b[i+1] == '[':
			switch b[i+2] {
			case 'A':
				e.Virt = key.KeyUp
			case 'B':
				e.Virt = key.KeyDown
			case 'C':
				e.Virt = key.KeyRight
			case 'D':
				e.Virt = key.KeyLeft
			case 'H':
				e.Virt = key.KeyHome
			case 'F':
				e.Virt = key.KeyEnd
			}
			i += 2
		case c == 0x1b:
			e.Virt = key.KeyEscape
		case c == '\r':
			e.Virt = key.KeyReturn
		case c == '\t':
			e.Virt = key.KeyTab
		case c == 0x7f:
			e.Virt = key.KeyBack
		case c == ' ':
			e.Virt = key.KeySpace
			e.Character = uint32(c)
		case c < 0x20:
			// Control characters: ctrl-a arrives as 0x01.
			e.Modifiers.Add(event.ModCtrl)
			e.Character = uint32(c) + 0x60
		default:
			e.Character = uint32(c)
			if c >= 'A' && c <= 'Z' {
				e.Modifiers.Add(event.ModShift)
			}
		}
		evs = append(evs, e)
	}
	return evs
}
