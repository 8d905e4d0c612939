package xyz2sgf

// Color identifies the player who made a move.
type Color int

const (
	Black Color = iota
	White
)

// String returns the SGF property letter for the color.
func (c Color) String() string {
	if c == White {
		return "W"
	}
	return "B"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// MoveKind distinguishes played stones from passes and resignations.
type MoveKind int

const (
	Play MoveKind = iota
	Pass
	Resign
)

// Point is a 0-indexed board intersection in SGF axis order: Col increases
// left to right, Row increases top to bottom.
type Point struct {
	Col int
	Row int
}

// Move is one ply of the game.
type Move struct {
	Color  Color
	Kind   MoveKind
	Point  Point // valid only when Kind is Play
	Number int   // move number as recorded by the source format
}

// Player holds one side's identity as recorded in the source file.
type Player struct {
	Name string
	Rank string
}

// GameInfo carries free-text metadata fields that pass through to SGF.
type GameInfo struct {
	Event   string
	Date    string
	Place   string
	Rules   string
	Comment string
}

// GameRecord is the intermediate representation every parser produces and
// the serializer consumes. A record is built by exactly one parser
// invocation and is read-only afterwards; nothing is shared between
// conversions.
type GameRecord struct {
	BoardSize int
	Handicap  []Point
	Komi      *float64
	Black     Player
	White     Player
	Result    string
	Info      GameInfo
	Moves     []Move
}

// handicapPoints19 is the fixed handicap placement used by GIB and NGF on a
// 19x19 board. Neither format stores the stone positions, only the count.
var handicapPoints19 = map[int][]Point{
	2: {{15, 3}, {3, 15}},
	3: {{15, 3}, {3, 15}, {15, 15}},
	4: {{15, 3}, {3, 15}, {15, 15}, {3, 3}},
	5: {{15, 3}, {3, 15}, {15, 15}, {3, 3}, {9, 9}},
	6: {{15, 3}, {3, 15}, {15, 15}, {3, 3}, {3, 9}, {15, 9}},
	7: {{15, 3}, {3, 15}, {15, 15}, {3, 3}, {3, 9}, {15, 9}, {9, 9}},
	8: {{15, 3}, {3, 15}, {15, 15}, {3, 3}, {3, 9}, {15, 9}, {9, 3}, {9, 15}},
	9: {{15, 3}, {3, 15}, {15, 15}, {3, 3}, {3, 9}, {15, 9}, {9, 3}, {9, 15}, {9, 9}},
}
