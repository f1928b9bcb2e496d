package testcases

// All contains all reference scenes, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]TestCase{
	"solid":     solidCases,
	"transform": transformCases,
	"line":      lineCases,
	"stack":     stackCases,
	"anim":      animCases,
	"edge":      edgeCases,
	"mesh":      meshCases,
}
