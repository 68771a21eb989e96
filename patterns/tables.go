package patterns

// Coordinate tables for the seed figures on the reference 24x44 board.
// Offsets are load-bearing: moving a single cell changes how the figure
// evolves.

// https://conwaylife.com/wiki/Pulsar
var pulsar = []Coord{
	// top left quadrant
	{6, 17}, {6, 18}, {6, 19},
	{8, 15}, {9, 15}, {10, 15},
	{8, 20}, {9, 20}, {10, 20},
	{11, 17}, {11, 18}, {11, 19},

	// bottom left quadrant
	{13, 17}, {13, 18}, {13, 19},
	{18, 17}, {18, 18}, {18, 19},
	{14, 15}, {15, 15}, {16, 15},
	{14, 20}, {15, 20}, {16, 20},

	// top right quadrant
	{6, 23}, {6, 24}, {6, 25},
	{11, 23}, {11, 24}, {11, 25},
	{8, 22}, {9, 22}, {10, 22},
	{8, 27}, {9, 27}, {10, 27},

	// bottom right quadrant
	{14, 22}, {15, 22}, {16, 22},
	{14, 27}, {15, 27}, {16, 27},
	{13, 23}, {13, 24}, {13, 25},
	{18, 23}, {18, 24}, {18, 25},
}

// https://en.wikipedia.org/wiki/Glider_(Conway%27s_Life)
var gliders = []Coord{
	{2, 6}, {3, 7}, {4, 7}, {4, 6}, {4, 5},
	{2, 12}, {3, 13}, {4, 13}, {4, 12}, {4, 11},
	{2, 18}, {3, 19}, {4, 19}, {4, 18}, {4, 17},
	{2, 24}, {3, 25}, {4, 25}, {4, 24}, {4, 23},
}

// https://conwaylife.com/wiki/Gosper_glider_gun
var gliderGun = []Coord{
	// left block
	{10, 4}, {10, 5}, {11, 4}, {11, 5},

	// left figure
	{10, 14}, {11, 14}, {12, 14},
	{9, 15}, {13, 15},
	{8, 16}, {8, 17}, {14, 16}, {14, 17},
	{11, 18},
	{9, 19}, {13, 19},
	{10, 20}, {11, 20}, {12, 20},
	{11, 21},

	// right figure
	{8, 24}, {9, 24}, {10, 24},
	{8, 25}, {9, 25}, {10, 25},
	{7, 26}, {11, 26},
	{6, 28}, {7, 28}, {11, 28}, {12, 28},

	// right block
	{8, 38}, {9, 38}, {8, 39}, {9, 39},
}

// https://conwaylife.com/wiki/Queen_bee_shuttle
var queenBee = []Coord{
	// left block
	{11, 11}, {11, 12}, {12, 11}, {12, 12},

	// right block
	{11, 31}, {11, 32}, {12, 31}, {12, 32},

	// queen bee
	{11, 16},
	{10, 17}, {12, 17},
	{13, 18}, {9, 18},
	{10, 19}, {11, 19}, {12, 19},
	{8, 20}, {9, 20}, {13, 20},
	{14, 21},
}

var tables = map[ID][]Coord{
	Pulsar:    pulsar,
	Gliders:   gliders,
	GliderGun: gliderGun,
	QueenBee:  queenBee,
}
