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

// Package mesh reads polygon meshes from a line oriented vertex/face text
// format and turns them into triangle batches.
//
// Each record occupies one line. "v x y z" declares a vertex, "f a b c"
// a triangle and "f a b c d" a quad, where the face indices are 1-based
// references into the vertex list. A face token of the form "a/t/n" uses
// the vertex index a. Quads are split along the diagonal from their first
// to their third corner. Tokens are separated by blanks, may be quoted, and
// "#" starts a comment. Other record types are ignored.
//
// Malformed v and f records are skipped. The [Report] returned by [Load]
// lists every skipped record, so that callers can tell the user about
// them.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/shlex"

	"seehuhn.de/go/anim/solid"
)

var (
	// ErrFieldCount marks a record with the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrIndexRange marks a face which refers to a non-existent vertex.
	ErrIndexRange = errors.New("vertex index out of range")

	// ErrNumber marks a field which is not a valid number.
	ErrNumber = errors.New("invalid number")

	// ErrSyntax marks a record which cannot be split into fields, for
	// example because of an unterminated quote.
	ErrSyntax = errors.New("malformed record")
)

// Problem describes one skipped record.
type Problem struct {
	Line int
	Err  error
}

func (p Problem) Error() string {
	return fmt.Sprintf("line %d: %v", p.Line, p.Err)
}

// Report summarises what Load found.
type Report struct {
	Vertices  int // vertices declared
	Faces     int // faces turned into triangles
	Triangles int // triangles added to the batch
	Skipped   []Problem
}

// face is a face record whose indices have not yet been resolved.
type face struct {
	line int
	idx  []int
}

// Load reads a mesh from r and appends its triangles to b.
// The returned error is only non-nil if reading from r fails;
// malformed records are listed in the report instead. There is no limit
// on the length of a line.
func Load(r io.Reader, b *solid.Batch) (Report, error) {
	var rep Report
	var verts []mgl64.Vec3
	var faces []face

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return rep, readErr
		}
		if line != "" {
			lineNo++
		}

		kind := recordKind(line)
		if kind == "v" || kind == "f" {
			fields, err := shlex.Split(line)
			switch {
			case err != nil:
				rep.Skipped = append(rep.Skipped, Problem{lineNo, fmt.Errorf("%w: %v", ErrSyntax, err)})
			case len(fields) == 0:
				// the whole record was a comment
			case fields[0] == "v":
				v, err := parseVertex(fields[1:])
				if err != nil {
					rep.Skipped = append(rep.Skipped, Problem{lineNo, err})
					break
				}
				verts = append(verts, v)
			case fields[0] == "f":
				idx, err := parseFace(fields[1:])
				if err != nil {
					rep.Skipped = append(rep.Skipped, Problem{lineNo, err})
					break
				}
				faces = append(faces, face{lineNo, idx})
			}
		}

		if readErr == io.EOF {
			break
		}
	}
	rep.Vertices = len(verts)

	// Faces are resolved once all vertices are known.
	for _, f := range faces {
		if bad, ok := checkRange(f.idx, len(verts)); !ok {
			err := fmt.Errorf("%w: %d (have %d vertices)", ErrIndexRange, bad, len(verts))
			rep.Skipped = append(rep.Skipped, Problem{f.line, err})
			continue
		}
		p := func(k int) mgl64.Vec3 { return verts[f.idx[k]-1] }
		b.AddTriangle(p(0), p(1), p(2))
		rep.Triangles++
		if len(f.idx) == 4 {
			b.AddTriangle(p(0), p(2), p(3))
			rep.Triangles++
		}
		rep.Faces++
	}
	return rep, nil
}

// recordKind returns the first blank-separated word of line.
func recordKind(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		line = line[:i]
	}
	return line
}

// LoadFile reads the mesh stored under name in fsys.
func LoadFile(fsys fs.FS, name string, b *solid.Batch) (Report, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()
	return Load(f, b)
}

func parseVertex(fields []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if len(fields) != 3 {
		return v, fmt.Errorf("%w: vertex has %d coordinates, want 3", ErrFieldCount, len(fields))
	}
	for i, s := range fields {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, fmt.Errorf("%w: %q", ErrNumber, s)
		}
		v[i] = x
	}
	return v, nil
}

func parseFace(fields []string) ([]int, error) {
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("%w: face has %d indices, want 3 or 4", ErrFieldCount, len(fields))
	}
	idx := make([]int, len(fields))
	for i, s := range fields {
		s, _, _ = strings.Cut(s, "/")
		k, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNumber, s)
		}
		idx[i] = k
	}
	return idx, nil
}

// checkRange returns the first index outside 1..n.
func checkRange(idx []int, n int) (int, bool) {
	for _, k := range idx {
		if k < 1 || k > n {
			return k, false
		}
	}
	return 0, true
}
