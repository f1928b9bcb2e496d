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
	"encoding/json"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/anim/xform"
)

// jsonScript is the interchange form of a Script.
type jsonScript struct {
	Commands []jsonCommand          `json:"commands"`
	Symbols  map[string]jsonMaterial `json:"symbols,omitempty"`
}

type jsonCommand struct {
	Op        string            `json:"op"`
	Args      []json.RawMessage `json:"args,omitempty"`
	Constants string            `json:"constants,omitempty"`
	Knob      string            `json:"knob,omitempty"`
}

// jsonMaterial holds ambient, diffuse and specular coefficients per channel.
type jsonMaterial struct {
	Red   [3]float64 `json:"red"`
	Green [3]float64 `json:"green"`
	Blue  [3]float64 `json:"blue"`
}

// Decode reads a script in JSON form and validates it.
func Decode(r io.Reader) (*Script, error) {
	var raw jsonScript
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	s := &Script{Symbols: NewSymbols()}
	for name, m := range raw.Symbols {
		s.Symbols.Materials[name] = shade.Material{
			Red:   coefficients(m.Red),
			Green: coefficients(m.Green),
			Blue:  coefficients(m.Blue),
		}
	}

	s.Commands = make([]Command, 0, len(raw.Commands))
	for i, rc := range raw.Commands {
		c, err := rc.decode()
		if err != nil {
			return nil, fmt.Errorf("command %d (%s): %w", i, rc.Op, err)
		}
		s.Commands = append(s.Commands, c)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (rc *jsonCommand) decode() (Command, error) {
	a := args{raw: rc.Args}
	var c Command
	switch rc.Op {
	case "box":
		if err := a.arity(6); err != nil {
			return nil, err
		}
		c = Box{
			X: a.num(0), Y: a.num(1), Z: a.num(2),
			W: a.num(3), H: a.num(4), D: a.num(5),
			Material: rc.Constants, Knob: rc.Knob,
		}
	case "sphere":
		if err := a.arity(4); err != nil {
			return nil, err
		}
		c = Sphere{
			X: a.num(0), Y: a.num(1), Z: a.num(2), R: a.num(3),
			Material: rc.Constants, Knob: rc.Knob,
		}
	case "torus":
		if err := a.arity(5); err != nil {
			return nil, err
		}
		c = Torus{
			X: a.num(0), Y: a.num(1), Z: a.num(2),
			R0: a.num(3), R1: a.num(4),
			Material: rc.Constants, Knob: rc.Knob,
		}
	case "line":
		if err := a.arity(6); err != nil {
			return nil, err
		}
		c = Line{
			X0: a.num(0), Y0: a.num(1), Z0: a.num(2),
			X1: a.num(3), Y1: a.num(4), Z1: a.num(5),
			Knob: rc.Knob,
		}
	case "mesh":
		if err := a.arity(1); err != nil {
			return nil, err
		}
		c = Mesh{File: a.str(0), Material: rc.Constants, Knob: rc.Knob}
	case "move":
		if err := a.arity(3); err != nil {
			return nil, err
		}
		c = Move{X: a.num(0), Y: a.num(1), Z: a.num(2), Knob: rc.Knob}
	case "scale":
		if err := a.arity(3); err != nil {
			return nil, err
		}
		c = Scale{X: a.num(0), Y: a.num(1), Z: a.num(2), Knob: rc.Knob}
	case "rotate":
		if err := a.arity(2); err != nil {
			return nil, err
		}
		axis, err := xform.ParseAxis(a.str(0))
		if a.err == nil && err != nil {
			return nil, err
		}
		c = Rotate{Axis: axis, Degrees: a.num(1), Knob: rc.Knob}
	case "push":
		if err := a.arity(0); err != nil {
			return nil, err
		}
		c = Push{}
	case "pop":
		if err := a.arity(0); err != nil {
			return nil, err
		}
		c = Pop{}
	case "display":
		if err := a.arity(0); err != nil {
			return nil, err
		}
		c = Display{}
	case "save":
		if err := a.arity(1); err != nil {
			return nil, err
		}
		c = Save{Name: a.str(0)}
	case "frames":
		if err := a.arity(1); err != nil {
			return nil, err
		}
		c = Frames{N: a.integer(0)}
	case "basename":
		if err := a.arity(1); err != nil {
			return nil, err
		}
		c = Basename{Name: a.str(0)}
	case "vary":
		if err := a.arity(4); err != nil {
			return nil, err
		}
		c = Vary{
			Knob:       rc.Knob,
			StartFrame: a.integer(0),
			EndFrame:   a.integer(1),
			Start:      a.num(2),
			End:        a.num(3),
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, rc.Op)
	}
	if a.err != nil {
		return nil, a.err
	}
	return c, nil
}

// args converts raw JSON arguments. The first conversion error is kept
// in err and later conversions return zero values.
type args struct {
	raw []json.RawMessage
	err error
}

func (a *args) arity(n int) error {
	if len(a.raw) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, len(a.raw), n)
	}
	return nil
}

func (a *args) num(i int) float64 {
	var x float64
	if a.err == nil {
		if err := json.Unmarshal(a.raw[i], &x); err != nil {
			a.err = fmt.Errorf("%w: argument %d: expected a number, got %s", ErrArgType, i, a.raw[i])
		}
	}
	return x
}

func (a *args) integer(i int) int {
	x := a.num(i)
	if a.err == nil && (x != math.Trunc(x) || math.Abs(x) > math.MaxInt32) {
		a.err = fmt.Errorf("%w: argument %d: expected an integer, got %g", ErrArgType, i, x)
		return 0
	}
	return int(x)
}

func (a *args) str(i int) string {
	var s string
	if a.err == nil {
		if err := json.Unmarshal(a.raw[i], &s); err != nil {
			a.err = fmt.Errorf("%w: argument %d: expected a string, got %s", ErrArgType, i, a.raw[i])
		}
	}
	return s
}

func coefficients(v [3]float64) shade.Coefficients {
	return shade.Coefficients{Ambient: v[0], Diffuse: v[1], Specular: v[2]}
}

func triple(c shade.Coefficients) [3]float64 {
	return [3]float64{c.Ambient, c.Diffuse, c.Specular}
}

// Encode writes the script in JSON form. The default material is not part
// of the JSON format and is not written.
func Encode(w io.Writer, s *Script) error {
	raw := jsonScript{
		Commands: make([]jsonCommand, 0, len(s.Commands)),
	}
	if len(s.Symbols.Materials) > 0 {
		raw.Symbols = make(map[string]jsonMaterial, len(s.Symbols.Materials))
		for name, m := range s.Symbols.Materials {
			raw.Symbols[name] = jsonMaterial{
				Red:   triple(m.Red),
				Green: triple(m.Green),
				Blue:  triple(m.Blue),
			}
		}
	}

	for i, c := range s.Commands {
		rc, err := encodeCommand(c)
		if err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
		raw.Commands = append(raw.Commands, rc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

func encodeCommand(c Command) (jsonCommand, error) {
	rc := jsonCommand{
		Op:        Op(c),
		Constants: MaterialOf(c),
		Knob:      KnobOf(c),
	}
	var vals []any
	switch c := c.(type) {
	case Box:
		vals = []any{c.X, c.Y, c.Z, c.W, c.H, c.D}
	case Sphere:
		vals = []any{c.X, c.Y, c.Z, c.R}
	case Torus:
		vals = []any{c.X, c.Y, c.Z, c.R0, c.R1}
	case Line:
		vals = []any{c.X0, c.Y0, c.Z0, c.X1, c.Y1, c.Z1}
	case Mesh:
		vals = []any{c.File}
	case Move:
		vals = []any{c.X, c.Y, c.Z}
	case Scale:
		vals = []any{c.X, c.Y, c.Z}
	case Rotate:
		vals = []any{c.Axis.String(), c.Degrees}
	case Push, Pop, Display:
		// no arguments
	case Save:
		vals = []any{c.Name}
	case Frames:
		vals = []any{c.N}
	case Basename:
		vals = []any{c.Name}
	case Vary:
		rc.Knob = c.Knob
		vals = []any{c.StartFrame, c.EndFrame, c.Start, c.End}
	default:
		return rc, fmt.Errorf("%w %T", ErrUnknownOp, c)
	}

	for _, v := range vals {
		buf, err := json.Marshal(v)
		if err != nil {
			return rc, err
		}
		rc.Args = append(rc.Args, buf)
	}
	return rc, nil
}
