// seehuhn.de/go/anim - animated 3D scenes in software
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package command

import (
	"fmt"

	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/anim/xform"
)

// Symbols is the table of named materials.
type Symbols struct {
	// Default is used by shapes which do not name a material.
	Default shade.Material

	Materials map[string]shade.Material
}

// NewSymbols returns a symbol table which only holds the default material.
func NewSymbols() Symbols {
	return Symbols{
		Default:   shade.DefaultMaterial(),
		Materials: make(map[string]shade.Material),
	}
}

// Lookup returns the named material. The empty name selects the default
// material.
func (s *Symbols) Lookup(name string) (shade.Material, error) {
	if name == "" {
		return s.Default, nil
	}
	m, ok := s.Materials[name]
	if !ok {
		return shade.Material{}, fmt.Errorf("%w %q", ErrUndefinedMaterial, name)
	}
	return m, nil
}

// Script is a complete scene description.
type Script struct {
	Commands []Command
	Symbols  Symbols
}

// Validate checks the parts of a script which can be checked without
// executing it: material references, rotation axes and file names.
// Knob references depend on the frame and are checked during rendering.
func (s *Script) Validate() error {
	for i, c := range s.Commands {
		if err := s.check(c); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, Op(c), err)
		}
	}
	return nil
}

func (s *Script) check(c Command) error {
	if _, err := s.Symbols.Lookup(MaterialOf(c)); err != nil {
		return err
	}
	switch c := c.(type) {
	case Rotate:
		if c.Axis < xform.AxisX || c.Axis > xform.AxisZ {
			return fmt.Errorf("%w %d", ErrBadAxis, int(c.Axis))
		}
	case Mesh:
		if c.File == "" {
			return fmt.Errorf("%w: empty file name", ErrArgType)
		}
	case Save:
		if c.Name == "" {
			return fmt.Errorf("%w: empty file name", ErrArgType)
		}
	case Vary:
		if c.Knob == "" {
			return fmt.Errorf("%w: missing knob name", ErrArgType)
		}
	case nil:
		return ErrUnknownOp
	}
	return nil
}
