// Command genpdf renders every reference scene into PDF proof pages,
// one page per frame, for visual inspection.
package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/anim"
	"seehuhn.de/go/anim/sink"
	"seehuhn.de/go/anim/testcases"
)

const proofDir = "testdata/proof"

func main() {
	// Create output directory
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generatePDF(tc, filepath.Join(proofDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, dir string) error {
	opts := []anim.Option{
		anim.WithSize(tc.Width, tc.Height),
		anim.WithLineWidth(tc.LineWidth),
		anim.WithOutputDir(dir),
		// scale up, so that single pixels are visible in a viewer
		anim.WithWriter(&sink.Files{Format: "pdf", Scale: 4}),
	}
	if tc.Files != nil {
		opts = append(opts, anim.WithFS(tc.Files))
	}

	_, err := anim.New(opts...).Render(context.Background(), tc.Script())
	return err
}
