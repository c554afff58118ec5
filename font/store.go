package font

import (
	"errors"
	"fmt"
	"io"
)

// Store errors.
var (
	ErrNotLoaded = errors.New("font: font not loaded")
)

// Store holds loaded fonts by name and tracks the active font used for text
// rendering. Multiple fonts may be resident at once; selection is a pointer
// swap, not a reload. The zero value is ready for use.
//
// A Store is not safe for concurrent use.
type Store struct {
	fonts  map[string]*Font
	active *Font
}

// Add registers a decoded font under its name, replacing any font previously
// loaded under the same name. The active font is left untouched.
func (s *Store) Add(f *Font) {
	if s.fonts == nil {
		s.fonts = make(map[string]*Font)
	}
	s.fonts[f.Name] = f
}

// Load decodes a packed font from r and registers it under name.
func (s *Store) Load(name string, r io.Reader) error {
	f, err := Decode(name, r)
	if err != nil {
		return err
	}
	s.Add(f)
	return nil
}

// LoadFile decodes a packed font from a .pf file, named after the file base
// name without extension.
func (s *Store) LoadFile(path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	s.Add(f)
	return nil
}

// Select makes the named font the active font. It fails with ErrNotLoaded if
// no font of that name was loaded.
func (s *Store) Select(name string) error {
	f, ok := s.fonts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotLoaded, name)
	}
	s.active = f
	return nil
}

// Active returns the active font, or nil when no font has been selected.
func (s *Store) Active() *Font {
	return s.active
}

// Get returns the named font without changing the selection.
func (s *Store) Get(name string) (*Font, bool) {
	f, ok := s.fonts[name]
	return f, ok
}
