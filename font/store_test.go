package font

import (
	"bytes"
	"errors"
	"testing"
)

func TestStore(t *testing.T) {
	var s Store

	if s.Active() != nil {
		t.Error("expected no active font on a fresh store")
	}

	if err := s.Select("mono8"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}

	if err := s.Load("mono8", bytes.NewReader(testFontBytes())); err != nil {
		t.Fatal(err)
	}

	// Loading alone must not select: no font selected is a valid state.
	if s.Active() != nil {
		t.Error("loading a font must not make it active")
	}

	if err := s.Select("mono8"); err != nil {
		t.Fatal(err)
	}
	f := s.Active()
	if f == nil || f.Name != "mono8" {
		t.Fatalf("expected active font %q, got %v", "mono8", f)
	}

	if _, ok := s.Get("mono8"); !ok {
		t.Error("expected Get to find the loaded font")
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("unexpected font for unknown name")
	}

	// Switching is a pointer swap between resident fonts.
	if err := s.Load("alt", bytes.NewReader(testFontBytes())); err != nil {
		t.Fatal(err)
	}
	if err := s.Select("alt"); err != nil {
		t.Fatal(err)
	}
	if v := s.Active(); v.Name != "alt" {
		t.Errorf("expected active font %q, got %q", "alt", v.Name)
	}
	if err := s.Select("mono8"); err != nil {
		t.Fatal(err)
	}
	if s.Active() != f {
		t.Error("reselecting must return the originally loaded font")
	}

	// A failed select leaves the selection untouched.
	if err := s.Select("nope"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
	if s.Active() != f {
		t.Error("failed select must not change the active font")
	}

	if err := s.Load("broken", bytes.NewReader([]byte{'P', 'F'})); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}
