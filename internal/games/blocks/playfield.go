package blocks

// Playfield is the fixed-size grid that locked pieces are merged into.
// Row 0 is the top of the hidden spawn buffer; the visible area is the
// bottom rows of the grid.
type Playfield struct {
	width  int
	height int
	cells  [][]Kind
}

// NewPlayfield creates an empty playfield of the given dimensions.
func NewPlayfield(width, height int) *Playfield {
	if width <= 0 || height <= 0 {
		panic("blocks: playfield dimensions must be positive")
	}
	p := &Playfield{width: width, height: height}
	p.cells = make([][]Kind, height)
	for y := range p.cells {
		p.cells[y] = make([]Kind, width)
	}
	return p
}

// Width returns the number of columns.
func (p *Playfield) Width() int {
	return p.width
}

// Height returns the number of rows, including the hidden buffer.
func (p *Playfield) Height() int {
	return p.height
}

// Cell returns the kind stored at (x, y), or KindNone outside the grid.
func (p *Playfield) Cell(x, y int) Kind {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return KindNone
	}
	return p.cells[y][x]
}

// Occupied reports whether (x, y) holds a locked cell.
func (p *Playfield) Occupied(x, y int) bool {
	return p.Cell(x, y) != KindNone
}

// Set stores a kind at (x, y). Out-of-range coordinates are ignored.
func (p *Playfield) Set(x, y int, k Kind) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.cells[y][x] = k
}

// Merge writes the piece's kind into every cell it occupies. Cells above
// row 0 are dropped; overflow reports whether any were.
func (p *Playfield) Merge(pc Piece) (overflow bool) {
	pc.Cells(func(x, y int) {
		if y < 0 {
			overflow = true
			return
		}
		p.Set(x, y, pc.Kind)
	})
	return overflow
}

// rowFull reports whether every cell of row y is filled.
func (p *Playfield) rowFull(y int) bool {
	for _, c := range p.cells[y] {
		if c == KindNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the number of rows removed.
func (p *Playfield) ClearFullRows() int {
	cleared := 0
	for y := p.height - 1; y >= 0; {
		if !p.rowFull(y) {
			y--
			continue
		}

		// Reuse the removed row's storage as the new empty top row
		row := p.cells[y]
		copy(p.cells[1:y+1], p.cells[:y])
		for x := range row {
			row[x] = KindNone
		}
		p.cells[0] = row
		cleared++
		// Same index now holds the row that was above; examine it again
	}
	return cleared
}

// Reset empties every cell.
func (p *Playfield) Reset() {
	for y := range p.cells {
		for x := range p.cells[y] {
			p.cells[y][x] = KindNone
		}
	}
}

// Rows returns a deep copy of the grid, top row first.
func (p *Playfield) Rows() [][]Kind {
	out := make([][]Kind, p.height)
	for y, row := range p.cells {
		out[y] = append([]Kind(nil), row...)
	}
	return out
}
