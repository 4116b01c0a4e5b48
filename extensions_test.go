package weft_test

import (
	"testing"

	"github.com/softbind/weft"
)

type InputSource interface {
	Poll() string
}

type stubInput struct{ name string }

func (s stubInput) Poll() string { return s.name }

func TestExtensionSetAndGet(t *testing.T) {
	world := newTestWorld(t)

	if _, ok := weft.TryGetExtension[InputSource](world); ok {
		t.Fatal("empty slot reported present")
	}

	weft.SetExtension[InputSource](world, stubInput{name: "keyboard"})
	got, ok := weft.TryGetExtension[InputSource](world)
	if !ok {
		t.Fatal("extension missing after set")
	}
	if got.Poll() != "keyboard" {
		t.Errorf("wrong instance: %q", got.Poll())
	}
}

func TestExtensionLastWriterWins(t *testing.T) {
	world := newTestWorld(t)
	weft.SetExtension[InputSource](world, stubInput{name: "first"})
	weft.SetExtension[InputSource](world, stubInput{name: "second"})

	got, _ := weft.TryGetExtension[InputSource](world)
	if got.Poll() != "second" {
		t.Errorf("expected replacement, got %q", got.Poll())
	}
}

func TestExtensionSlotsAreKeyedByInterface(t *testing.T) {
	type Clipboard interface{ Poll() string }
	world := newTestWorld(t)
	weft.SetExtension[InputSource](world, stubInput{name: "input"})
	weft.SetExtension[Clipboard](world, stubInput{name: "clipboard"})

	in, _ := weft.TryGetExtension[InputSource](world)
	cb, _ := weft.TryGetExtension[Clipboard](world)
	if in.Poll() != "input" || cb.Poll() != "clipboard" {
		t.Errorf("slots collided: %q %q", in.Poll(), cb.Poll())
	}
}

func TestRemoveExtension(t *testing.T) {
	world := newTestWorld(t)
	weft.SetExtension[InputSource](world, stubInput{name: "x"})
	weft.RemoveExtension[InputSource](world)

	if _, ok := weft.TryGetExtension[InputSource](world); ok {
		t.Error("slot still occupied after remove")
	}
	// Removing an empty slot is a no-op.
	weft.RemoveExtension[InputSource](world)

	// The slot can be refilled.
	weft.SetExtension[InputSource](world, stubInput{name: "y"})
	got, ok := weft.TryGetExtension[InputSource](world)
	if !ok || got.Poll() != "y" {
		t.Errorf("refill failed: %v %v", got, ok)
	}
}
