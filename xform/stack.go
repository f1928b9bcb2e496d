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

package xform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-gl/mathgl/mgl64/matstack"
)

var (
	// ErrStackUnderflow is returned when a pop would leave the stack empty.
	ErrStackUnderflow = errors.New("transform stack underflow")

	// ErrBadAxis is returned for a rotation axis other than x, y or z.
	ErrBadAxis = errors.New("invalid rotation axis")
)

// Stack is a stack of composed transforms. The top of the stack is the
// coordinate system for newly generated geometry. A Stack always holds at
// least one matrix.
//
// Matrices are stored by value, so the copy made by Push is independent of
// the level below it.
type Stack struct {
	ms matstack.MatStack
}

// NewStack returns a stack holding only the identity matrix.
func NewStack() *Stack {
	return &Stack{ms: *matstack.NewMatStack()}
}

// Top returns the active transform.
func (s *Stack) Top() mgl64.Mat4 {
	return s.ms.Peek()
}

// Depth returns the number of matrices on the stack.
func (s *Stack) Depth() int {
	return len(s.ms)
}

// Push duplicates the top of the stack.
func (s *Stack) Push() {
	s.ms.Push()
}

// Pop removes the top of the stack. It fails with ErrStackUnderflow,
// leaving the stack unchanged, if only one matrix is left.
func (s *Stack) Pop() error {
	if s.ms.Pop() != nil {
		return ErrStackUnderflow
	}
	return nil
}

// Compose replaces the top of the stack with top·delta.
// Geometry drawn afterwards is first mapped through delta and then
// through the previous top.
func (s *Stack) Compose(delta mgl64.Mat4) {
	s.ms.RightMul(delta)
}

// Reset drops everything except a single identity matrix.
func (s *Stack) Reset() {
	s.ms = s.ms[:1]
	s.ms.LoadIdent()
}
