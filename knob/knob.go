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

// Package knob resolves the animation parameters of a script: the number
// of frames, the file name prefix and the per-frame values of all knobs.
package knob

import (
	"errors"
	"fmt"

	"seehuhn.de/go/anim/command"
)

// DefaultBasename is used when a script declares frames but no basename.
const DefaultBasename = "default"

var (
	// ErrVaryWithoutFrames is returned when a script varies a knob but does
	// not declare the number of frames.
	ErrVaryWithoutFrames = errors.New("vary without frames")

	// ErrFrameCount indicates a frame count smaller than one.
	ErrFrameCount = errors.New("invalid number of frames")

	// ErrDegenerateSpan indicates a vary command whose start and end frame
	// coincide.
	ErrDegenerateSpan = errors.New("vary start and end frame are equal")

	// ErrFrameRange indicates a vary command which reaches outside the
	// animation or runs backwards.
	ErrFrameRange = errors.New("vary frame out of range")

	// ErrUndefinedKnob is returned when a knob is used in a frame where it
	// has no value.
	ErrUndefinedKnob = errors.New("undefined knob")
)

// Setup describes the animation as a whole.
type Setup struct {
	Frames   int
	Basename string

	// Animated is set if the script contains a frames command.
	Animated bool

	// DefaultedBasename is set if the script declares frames but no
	// basename, so that DefaultBasename was substituted.
	DefaultedBasename bool
}

// Scan finds the frame count and the basename of a script.
// If several commands set the same value, the last one wins.
func Scan(cmds []command.Command) (Setup, error) {
	s := Setup{Frames: 1}
	var hasVary, hasBasename bool
	for _, c := range cmds {
		switch c := c.(type) {
		case command.Frames:
			s.Frames = c.N
			s.Animated = true
		case command.Basename:
			s.Basename = c.Name
			hasBasename = true
		case command.Vary:
			hasVary = true
		}
	}

	if hasVary && !s.Animated {
		return Setup{}, ErrVaryWithoutFrames
	}
	if s.Frames < 1 {
		return Setup{}, fmt.Errorf("%w: %d", ErrFrameCount, s.Frames)
	}
	if !hasBasename {
		s.Basename = DefaultBasename
		s.DefaultedBasename = s.Animated
	}
	return s, nil
}

// Frame maps knob names to their values in one frame.
type Frame map[string]float64

// Table holds the knob values for every frame of an animation.
// It is read-only once built.
type Table []Frame

// Resolve builds the knob table for an animation with n frames.
//
// Every vary command sets its knob for all frames from its start frame to
// its end frame, inclusive, interpolating linearly between the start and
// end value. Later commands override earlier ones.
func Resolve(cmds []command.Command, n int) (Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrFrameCount, n)
	}
	t := make(Table, n)
	for i := range t {
		t[i] = make(Frame)
	}

	for i, c := range cmds {
		v, ok := c.(command.Vary)
		if !ok {
			continue
		}
		if err := check(v, n); err != nil {
			return nil, fmt.Errorf("command %d (vary %q): %w", i, v.Knob, err)
		}

		step := (v.End - v.Start) / float64(v.EndFrame-v.StartFrame)
		for a := v.StartFrame; a < v.EndFrame; a++ {
			t[a][v.Knob] = v.Start + step*float64(a-v.StartFrame)
		}
		t[v.EndFrame][v.Knob] = v.End
	}
	return t, nil
}

func check(v command.Vary, n int) error {
	switch {
	case v.StartFrame == v.EndFrame:
		return fmt.Errorf("%w (frame %d)", ErrDegenerateSpan, v.StartFrame)
	case v.StartFrame < 0 || v.EndFrame >= n:
		return fmt.Errorf("%w: frames %d to %d, animation has %d frames",
			ErrFrameRange, v.StartFrame, v.EndFrame, n)
	case v.EndFrame < v.StartFrame:
		return fmt.Errorf("%w: end frame %d before start frame %d",
			ErrFrameRange, v.EndFrame, v.StartFrame)
	}
	return nil
}

// Lookup returns the value of a knob in the given frame.
func (t Table) Lookup(frame int, name string) (float64, error) {
	if frame < 0 || frame >= len(t) {
		return 0, fmt.Errorf("%w %q: frame %d out of range", ErrUndefinedKnob, name, frame)
	}
	v, ok := t[frame][name]
	if !ok {
		return 0, fmt.Errorf("%w %q in frame %d", ErrUndefinedKnob, name, frame)
	}
	return v, nil
}
