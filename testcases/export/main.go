// Command export writes every reference scene as a JSON script, together
// with the mesh files it uses, so that the scenes can be rendered with
// cmd/animate. Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(filepath.Join(outDir, name+".json"), tc); err != nil {
				panic(err)
			}

			for file, data := range tc.Files {
				err := os.WriteFile(filepath.Join(outDir, file), data.Data, 0644)
				if err != nil {
					panic(err)
				}
			}
		}
	}
}

func export(path string, tc testcases.TestCase) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = command.Encode(f, tc.Script())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
