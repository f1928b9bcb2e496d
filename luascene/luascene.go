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

// Package luascene reads scene scripts written in Lua.
//
// A scene script calls one global function per command, in the same order
// as the commands of a JSON scene:
//
//	material("shiny", {red = {0.1, 0.5, 0.9}, green = {0.1, 0.5, 0.9}, blue = {0.1, 0.5, 0.9}})
//	frames(50)
//	vary("spin", 0, 49, 0, 1)
//	for i = 0, 4 do
//	    sphere(100*i, 250, 0, 40, {material = "shiny"})
//	end
//	rotate("y", 360, {knob = "spin"})
//
// Shapes and transformations take an optional trailing table with the
// fields material and knob.  Only the base, table, string and math
// libraries are available to scripts.
package luascene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	lua "github.com/yuin/gopher-lua"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/shade"
	"seehuhn.de/go/anim/xform"
)

// ErrScript is returned when a Lua script fails to compile or to run.
// The error message includes the script position.
var ErrScript = errors.New("lua script error")

// LoadFile reads a scene script from the named file.
func LoadFile(ctx context.Context, path string) (*command.Script, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Load(ctx, fd, path)
}

// Load runs the Lua scene script read from r and returns the commands it
// produced.  The name is used in error messages.  Cancelling ctx stops
// scripts which do not terminate by themselves.
func Load(ctx context.Context, r io.Reader, name string) (*command.Script, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)
	openLibs(L)

	b := &builder{
		script: &command.Script{Symbols: command.NewSymbols()},
	}
	b.register(L)

	fn, err := L.Load(r, name)
	if err != nil {
		return nil, wrap(err)
	}
	err = L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, wrap(err)
	}

	if err := b.script.Validate(); err != nil {
		return nil, err
	}
	return b.script, nil
}

func wrap(err error) error {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return fmt.Errorf("%w: %s", ErrScript, apiErr.Object.String())
	}
	return fmt.Errorf("%w: %v", ErrScript, err)
}

func openLibs(L *lua.LState) {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	// The base library can read and run files.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

type builder struct {
	script *command.Script
}

func (b *builder) register(L *lua.LState) {
	funcs := map[string]lua.LGFunction{
		"frames":   b.frames,
		"basename": b.basename,
		"vary":     b.vary,
		"material": b.material,
		"box":      b.box,
		"sphere":   b.sphere,
		"torus":    b.torus,
		"line":     b.line,
		"mesh":     b.mesh,
		"move":     b.move,
		"scale":    b.scale,
		"rotate":   b.rotate,
		"push":     b.simple(command.Push{}),
		"pop":      b.simple(command.Pop{}),
		"display":  b.simple(command.Display{}),
		"save":     b.save,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

func (b *builder) add(c command.Command) {
	b.script.Commands = append(b.script.Commands, c)
}

// options reads the optional table at stack position n.
func options(L *lua.LState, n int) (material, knob string) {
	tbl := L.OptTable(n, nil)
	if tbl == nil {
		return "", ""
	}
	tbl.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LString)
		if !ok {
			L.ArgError(n, "option names must be strings")
		}
		s, ok := v.(lua.LString)
		if !ok {
			L.ArgError(n, fmt.Sprintf("option %q must be a string", string(key)))
		}
		switch string(key) {
		case "material":
			material = string(s)
		case "knob":
			knob = string(s)
		default:
			L.ArgError(n, fmt.Sprintf("unknown option %q", string(key)))
		}
	})
	return material, knob
}

func num(L *lua.LState, n int) float64 {
	return float64(L.CheckNumber(n))
}

func (b *builder) frames(L *lua.LState) int {
	b.add(command.Frames{N: L.CheckInt(1)})
	return 0
}

func (b *builder) basename(L *lua.LState) int {
	b.add(command.Basename{Name: L.CheckString(1)})
	return 0
}

func (b *builder) vary(L *lua.LState) int {
	b.add(command.Vary{
		Knob:       L.CheckString(1),
		StartFrame: L.CheckInt(2),
		EndFrame:   L.CheckInt(3),
		Start:      num(L, 4),
		End:        num(L, 5),
	})
	return 0
}

// material defines a named material.  The second argument holds the
// ambient, diffuse and specular coefficients for each colour channel.
func (b *builder) material(L *lua.LState) int {
	name := L.CheckString(1)
	tbl := L.CheckTable(2)
	b.script.Symbols.Materials[name] = shade.Material{
		Red:   coefficients(L, tbl, "red"),
		Green: coefficients(L, tbl, "green"),
		Blue:  coefficients(L, tbl, "blue"),
	}
	return 0
}

func coefficients(L *lua.LState, tbl *lua.LTable, channel string) shade.Coefficients {
	t, ok := tbl.RawGetString(channel).(*lua.LTable)
	if !ok || t.Len() != 3 {
		L.ArgError(2, fmt.Sprintf("%s must be a list of three numbers", channel))
	}
	var k [3]float64
	for i := range k {
		v, ok := t.RawGetInt(i + 1).(lua.LNumber)
		if !ok {
			L.ArgError(2, fmt.Sprintf("%s must be a list of three numbers", channel))
		}
		k[i] = float64(v)
	}
	return shade.Coefficients{Ambient: k[0], Diffuse: k[1], Specular: k[2]}
}

func (b *builder) box(L *lua.LState) int {
	material, knob := options(L, 7)
	b.add(command.Box{
		X: num(L, 1), Y: num(L, 2), Z: num(L, 3),
		W: num(L, 4), H: num(L, 5), D: num(L, 6),
		Material: material, Knob: knob,
	})
	return 0
}

func (b *builder) sphere(L *lua.LState) int {
	material, knob := options(L, 5)
	b.add(command.Sphere{
		X: num(L, 1), Y: num(L, 2), Z: num(L, 3), R: num(L, 4),
		Material: material, Knob: knob,
	})
	return 0
}

func (b *builder) torus(L *lua.LState) int {
	material, knob := options(L, 6)
	b.add(command.Torus{
		X: num(L, 1), Y: num(L, 2), Z: num(L, 3),
		R0: num(L, 4), R1: num(L, 5),
		Material: material, Knob: knob,
	})
	return 0
}

func (b *builder) line(L *lua.LState) int {
	_, knob := options(L, 7)
	b.add(command.Line{
		X0: num(L, 1), Y0: num(L, 2), Z0: num(L, 3),
		X1: num(L, 4), Y1: num(L, 5), Z1: num(L, 6),
		Knob: knob,
	})
	return 0
}

func (b *builder) mesh(L *lua.LState) int {
	material, knob := options(L, 2)
	b.add(command.Mesh{File: L.CheckString(1), Material: material, Knob: knob})
	return 0
}

func (b *builder) move(L *lua.LState) int {
	_, knob := options(L, 4)
	b.add(command.Move{X: num(L, 1), Y: num(L, 2), Z: num(L, 3), Knob: knob})
	return 0
}

func (b *builder) scale(L *lua.LState) int {
	_, knob := options(L, 4)
	b.add(command.Scale{X: num(L, 1), Y: num(L, 2), Z: num(L, 3), Knob: knob})
	return 0
}

func (b *builder) rotate(L *lua.LState) int {
	axis, err := xform.ParseAxis(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	_, knob := options(L, 3)
	b.add(command.Rotate{Axis: axis, Degrees: num(L, 2), Knob: knob})
	return 0
}

func (b *builder) save(L *lua.LState) int {
	b.add(command.Save{Name: L.CheckString(1)})
	return 0
}

func (b *builder) simple(c command.Command) lua.LGFunction {
	return func(L *lua.LState) int {
		b.add(c)
		return 0
	}
}
