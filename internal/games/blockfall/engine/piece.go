package engine

import "fmt"

// Kind identifies a piece shape. Seven standard tetromino kinds plus four
// special kinds that unlock through play.
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindFloat // single cell, limited upward mobility
	KindPlus
	KindU
	KindDot
)

// StandardKinds are the classic tetromino shapes, available from the start.
var StandardKinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// SpecialKinds are drawn at half weight once unlocked.
var SpecialKinds = []Kind{KindFloat, KindPlus, KindU, KindDot}

// UnlockOrder is the fixed order in which locked kinds become available,
// one per score milestone.
var UnlockOrder = []Kind{KindPlus, KindU, KindDot}

// IsSpecial reports whether the kind is one of the four special shapes.
func (k Kind) IsSpecial() bool {
	switch k {
	case KindFloat, KindPlus, KindU, KindDot:
		return true
	}
	return false
}

// Known reports whether the kind is one of the eleven defined shapes.
func (k Kind) Known() bool {
	_, ok := pieceDefs[k]
	return ok
}

// String returns the conventional one-letter (or word) name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindFloat:
		return "Float"
	case KindPlus:
		return "Plus"
	case KindU:
		return "U"
	case KindDot:
		return "Dot"
	default:
		return "Unknown"
	}
}

// Shape is a square 0/1 matrix; true marks an occupied cell.
// Rotation produces a new matrix and never mutates the receiver.
type Shape [][]bool

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// Rotated returns the shape rotated 90 degrees.
// dir > 0 rotates clockwise, dir < 0 counter-clockwise.
func (s Shape) Rotated(dir int) Shape {
	n := len(s)
	out := make(Shape, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if dir > 0 {
				out[x][n-1-y] = s[y][x]
			} else {
				out[n-1-x][y] = s[y][x]
			}
		}
	}
	return out
}

// mustShape parses a shape literal from rows of '.' and 'X'.
func mustShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == 'X'
		}
	}
	return s
}

type pieceDef struct {
	shape  Shape
	color  Color
	spawnX int
	spawnY int
}

// pieceDefs holds the fixed shape, color and spawn offset per kind.
// Spawn rows are negative: pieces enter from above the visible board.
var pieceDefs = map[Kind]pieceDef{
	KindI: {
		shape: mustShape(
			"....",
			"XXXX",
			"....",
			"....",
		),
		color:  ColorCyan,
		spawnX: 3,
		spawnY: -2,
	},
	KindO: {
		shape: mustShape(
			"XX",
			"XX",
		),
		color:  ColorYellow,
		spawnX: 4,
		spawnY: -2,
	},
	KindT: {
		shape: mustShape(
			".X.",
			"XXX",
			"...",
		),
		color:  ColorMagenta,
		spawnX: 3,
		spawnY: -1,
	},
	KindS: {
		shape: mustShape(
			".XX",
			"XX.",
			"...",
		),
		color:  ColorGreen,
		spawnX: 3,
		spawnY: -1,
	},
	KindZ: {
		shape: mustShape(
			"XX.",
			".XX",
			"...",
		),
		color:  ColorRed,
		spawnX: 3,
		spawnY: -1,
	},
	KindJ: {
		shape: mustShape(
			"X..",
			"XXX",
			"...",
		),
		color:  ColorBlue,
		spawnX: 3,
		spawnY: -1,
	},
	KindL: {
		shape: mustShape(
			"..X",
			"XXX",
			"...",
		),
		color:  ColorOrange,
		spawnX: 3,
		spawnY: -1,
	},
	KindFloat: {
		shape:  mustShape("X"),
		color:  ColorWhite,
		spawnX: 4,
		spawnY: -1,
	},
	KindPlus: {
		shape: mustShape(
			".X.",
			"XXX",
			".X.",
		),
		color:  ColorPink,
		spawnX: 3,
		spawnY: -2,
	},
	KindU: {
		shape: mustShape(
			"X.X",
			"XXX",
			"...",
		),
		color:  ColorLime,
		spawnX: 3,
		spawnY: -1,
	},
	KindDot: {
		shape:  mustShape("X"),
		color:  ColorGray,
		spawnX: 4,
		spawnY: -1,
	},
}

// VariantRange bounds the cosmetic variant value assigned at creation.
const VariantRange = 100

// Piece is an active, next or held piece. Position and rotation mutate in
// place during its lifetime; the shape matrix is replaced on rotation.
type Piece struct {
	Kind    Kind
	Shape   Shape
	Color   Color
	X       int // grid column
	Y       int // grid row; may be negative at spawn
	Rot     int // rotation index in {0,1,2,3}
	Variant int // cosmetic only, must never influence gameplay
	UpMoves int // upward moves consumed (Float kind only)
}

// NewPiece creates a fresh piece of the given kind at its spawn offset.
// The variant is drawn from the generator. Requesting an unknown kind is a
// programming error and fails loudly.
func NewPiece(k Kind, rng *RNG) *Piece {
	def, ok := pieceDefs[k]
	if !ok {
		panic(fmt.Sprintf("engine: unknown piece kind %d", int(k)))
	}
	return &Piece{
		Kind:    k,
		Shape:   def.shape.Clone(),
		Color:   def.color,
		X:       def.spawnX,
		Y:       def.spawnY,
		Rot:     0,
		Variant: rng.Intn(VariantRange),
	}
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Shape = p.Shape.Clone()
	return &cp
}
