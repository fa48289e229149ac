package testcases

import "seehuhn.de/go/corridor/maze"

var walkCases = []TestCase{
	{
		Name:   "start_north",
		Start:  maze.DefaultStart,
		Facing: maze.North,
		Z:      0.5,
	},
	{
		Name:   "start_east",
		Start:  maze.DefaultStart,
		Facing: maze.East,
		Z:      0.5,
	},
	{
		Name:   "start_west",
		Start:  maze.DefaultStart,
		Facing: maze.West,
		Z:      0.5,
	},
	{
		Name:   "long_south",
		Start:  maze.Cell{X: 8, Y: 2},
		Facing: maze.South,
		Z:      0.5,
	},
	{
		Name:   "top_east",
		Start:  maze.Cell{X: 4, Y: 1},
		Facing: maze.East,
		Z:      0.5,
	},
	{
		Name:   "junction_north",
		Start:  maze.Cell{X: 4, Y: 4},
		Facing: maze.North,
		Z:      0.5,
	},
	{
		Name: "open_room",
		Maze: `
1 1 1 1 1 1 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 0 0 0 0 0 1
1 1 1 1 1 1 1
`,
		Start:  maze.Cell{X: 3, Y: 8},
		Facing: maze.North,
		Z:      0.5,
	},
	{
		Name: "endless",
		Maze: `
1 0 1
1 0 1
1 0 1
1 0 1
1 0 1
1 0 1
1 0 1
1 0 1
1 0 1
`,
		Start:  maze.Cell{X: 1, Y: 8},
		Facing: maze.North,
		Z:      0.5,
	},
}

var holeCases = []TestCase{
	{
		Name:   "floor_ahead",
		Start:  maze.DefaultStart,
		Facing: maze.North,
		Z:      0.5,
	},
	{
		Name:   "ceiling_ahead",
		Start:  maze.Cell{X: 5, Y: 6},
		Facing: maze.North,
		Z:      0.5,
	},
	{
		Name:   "both_west",
		Start:  maze.Cell{X: 8, Y: 4},
		Facing: maze.West,
		Z:      0.5,
	},
	{
		Name:   "standing_in_ceiling_hole",
		Start:  maze.Cell{X: 5, Y: 4},
		Facing: maze.West,
		Z:      0.5,
	},
}

var zoomCases = []TestCase{
	{
		Name:   "lean_forward",
		Start:  maze.DefaultStart,
		Facing: maze.North,
		Z:      0,
	},
	{
		Name:   "lean_back",
		Start:  maze.DefaultStart,
		Facing: maze.North,
		Z:      1,
	},
	{
		Name:   "lean_forward_wall",
		Start:  maze.DefaultStart,
		Facing: maze.East,
		Z:      0,
	},
	{
		Name:   "lean_back_holes",
		Start:  maze.Cell{X: 8, Y: 4},
		Facing: maze.West,
		Z:      1,
	},
}

var viewportCases = []TestCase{
	{
		Name:   "full_screen",
		Start:  maze.DefaultStart,
		Facing: maze.North,
		Z:      0.5,
		View: View{
			X0: 0, Y0: 0, X1: 159, Y1: 119,
			Depth: 6, Stretch: false,
			Width: 160, Height: 120,
		},
	},
	{
		Name:   "inset",
		Start:  maze.Cell{X: 8, Y: 4},
		Facing: maze.West,
		Z:      0.5,
		View: View{
			X0: 20, Y0: 10, X1: 139, Y1: 79,
			Depth: 6, Stretch: true,
			Width: 160, Height: 120,
		},
	},
	{
		Name:   "inset_cropped",
		Start:  maze.Cell{X: 8, Y: 4},
		Facing: maze.West,
		Z:      0.5,
		View: View{
			X0: 139, Y0: 79, X1: 20, Y1: 10,
			Depth: 6, Stretch: false,
			Width: 160, Height: 120,
		},
	},
	{
		Name:   "shallow",
		Start:  maze.Cell{X: 8, Y: 2},
		Facing: maze.South,
		Z:      0.5,
		View: View{
			X0: 0, Y0: 0, X1: 159, Y1: 89,
			Depth: 3, Stretch: true,
			Width: 160, Height: 120,
		},
	},
}
