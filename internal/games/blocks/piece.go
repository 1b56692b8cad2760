package blocks

// Kind identifies one of the seven piece kinds. The zero value marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// AllKinds lists the seven piece kinds in canonical bag order.
var AllKinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter tag of the kind.
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
	default:
		return "."
	}
}

// Valid reports whether k is one of the seven piece kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// Rotation selects a rotation direction.
type Rotation int

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// maxShapeSize is the largest bounding box of any piece (the I piece).
const maxShapeSize = 4

// Shape is a square occupancy matrix. It is a value type: rotating returns a
// new Shape and the canonical matrices can never be modified through a copy.
type Shape struct {
	size  int
	cells [maxShapeSize][maxShapeSize]bool
}

// newShape builds a shape from rows of '#' (filled) and '.' (empty).
func newShape(rows ...string) Shape {
	s := Shape{size: len(rows)}
	for y, row := range rows {
		if len(row) != s.size {
			panic("blocks: shape rows must form a square")
		}
		for x, ch := range row {
			s.cells[y][x] = ch == '#'
		}
	}
	return s
}

// canonicalShapes holds the spawn orientation of every kind.
var canonicalShapes = map[Kind]Shape{
	KindI: newShape(
		"....",
		"####",
		"....",
		"....",
	),
	KindO: newShape(
		"##",
		"##",
	),
	KindT: newShape(
		".#.",
		"###",
		"...",
	),
	KindS: newShape(
		".##",
		"##.",
		"...",
	),
	KindZ: newShape(
		"##.",
		".##",
		"...",
	),
	KindJ: newShape(
		"#..",
		"###",
		"...",
	),
	KindL: newShape(
		"..#",
		"###",
		"...",
	),
}

// ShapeOf returns the canonical shape of a kind.
// Panics on KindNone or an out-of-range kind.
func ShapeOf(k Kind) Shape {
	s, ok := canonicalShapes[k]
	if !ok {
		panic("blocks: no shape for kind " + k.String())
	}
	return s
}

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return s.size
}

// Filled reports whether the matrix cell at (x, y) is occupied.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return false
	}
	return s.cells[y][x]
}

// Rotate returns the shape turned a quarter in the given direction.
// Clockwise maps (y, x) to (x, n-1-y); counter-clockwise maps (y, x) to (n-1-x, y).
func (s Shape) Rotate(dir Rotation) Shape {
	r := Shape{size: s.size}
	n := s.size
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if dir == Clockwise {
				r.cells[x][n-1-y] = s.cells[y][x]
			} else {
				r.cells[n-1-x][y] = s.cells[y][x]
			}
		}
	}
	return r
}

// String renders the shape as rows of '#' and '.' separated by newlines.
func (s Shape) String() string {
	out := make([]byte, 0, s.size*(s.size+1))
	for y := 0; y < s.size; y++ {
		if y > 0 {
			out = append(out, '\n')
		}
		for x := 0; x < s.size; x++ {
			if s.cells[y][x] {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
	}
	return string(out)
}

// Grid is read-only access to the cells a piece collides with.
// Collision and ghost computations only ever see this view.
type Grid interface {
	Width() int
	Height() int
	Occupied(x, y int) bool
}

// Piece is a kind placed on the field: its current shape and the field
// position of the shape matrix's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// SpawnRule describes where new pieces appear.
type SpawnRule struct {
	FieldWidth int
	Row        int // Matrix top row for every kind except I
	RowI       int // Matrix top row for I
}

// Spawn creates a piece of the given kind in its canonical orientation,
// centered horizontally. Every kind except I and O is nudged one column left.
func (r SpawnRule) Spawn(k Kind) Piece {
	shape := ShapeOf(k)
	x := (r.FieldWidth - shape.Size()) / 2
	if k != KindI && k != KindO {
		x--
	}
	y := r.Row
	if k == KindI {
		y = r.RowI
	}
	return Piece{Kind: k, Shape: shape, X: x, Y: y}
}

// Rotated returns a copy of the piece with its shape turned in dir.
func (p Piece) Rotated(dir Rotation) Piece {
	p.Shape = p.Shape.Rotate(dir)
	return p
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Cells calls fn with the field coordinates of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	n := p.Shape.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if p.Shape.cells[y][x] {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}

// Collides reports whether the piece would overlap a wall, the floor or a
// filled cell after moving by (dx, dy). Cells above the field (y < 0) are
// only checked against the side walls, which lets pieces spawn partly hidden.
func (p Piece) Collides(g Grid, dx, dy int) bool {
	w, h := g.Width(), g.Height()
	n := p.Shape.Size()
	for sy := 0; sy < n; sy++ {
		for sx := 0; sx < n; sx++ {
			if !p.Shape.cells[sy][sx] {
				continue
			}
			x := p.X + sx + dx
			y := p.Y + sy + dy
			if x < 0 || x >= w || y >= h {
				return true
			}
			if y >= 0 && g.Occupied(x, y) {
				return true
			}
		}
	}
	return false
}

// GhostY returns the lowest row the piece can fall to from its current position.
func (p Piece) GhostY(g Grid) int {
	y := p.Y
	for !p.Collides(g, 0, y-p.Y+1) {
		y++
	}
	return y
}
