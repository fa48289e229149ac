// Command export writes the test case definitions to JSON, for use by
// external tools. Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/corridor/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string   `json:"name"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Maze    []string `json:"maze"`
	Start   [2]int   `json:"start"`
	Facing  string   `json:"facing"`
	Z       float64  `json:"z"`
	View    [4]int   `json:"view"`
	Depth   int      `json:"depth"`
	Stretch bool     `json:"stretch"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	g, err := tc.Grid()
	if err != nil {
		return jsonTestCase{}, err
	}
	v := tc.Viewport()
	return jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   v.Width,
		Height:  v.Height,
		Maze:    strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n"),
		Start:   [2]int{tc.Start.X, tc.Start.Y},
		Facing:  tc.Facing.String(),
		Z:       tc.Z,
		View:    [4]int{v.X0, v.Y0, v.X1, v.Y1},
		Depth:   v.Depth,
		Stretch: v.Stretch,
	}, nil
}
