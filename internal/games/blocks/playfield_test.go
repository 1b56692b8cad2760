package blocks

import "testing"

// fillRow fills every cell of row y except the listed gap columns.
func fillRow(f *Playfield, y int, k Kind, gaps ...int) {
	for x := 0; x < f.Width(); x++ {
		skip := false
		for _, g := range gaps {
			if g == x {
				skip = true
			}
		}
		if !skip {
			f.Set(x, y, k)
		}
	}
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name string
		full []int // Rows filled completely
	}{
		{"none", nil},
		{"bottom", []int{23}},
		{"separated", []int{23, 20, 15}},
		{"adjacent four", []int{20, 21, 22, 23}},
		{"top row", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewPlayfield(10, 24)
			isFull := make(map[int]bool)
			for _, y := range tt.full {
				fillRow(f, y, KindI)
				isFull[y] = true
			}

			// Mark every partial row with a distinct column so order can be checked
			var expected [][]Kind
			for y := 0; y < 24; y++ {
				if isFull[y] {
					continue
				}
				f.Set(y%10, y, KindT)
				expected = append(expected, append([]Kind(nil), f.Rows()[y]...))
			}

			got := f.ClearFullRows()
			if got != len(tt.full) {
				t.Fatalf("ClearFullRows() = %d, expected %d", got, len(tt.full))
			}

			rows := f.Rows()
			if len(rows) != 24 {
				t.Fatalf("height after clear = %d, expected 24", len(rows))
			}
			for y := 0; y < got; y++ {
				for x := 0; x < 10; x++ {
					if rows[y][x] != KindNone {
						t.Fatalf("row %d not empty after clear", y)
					}
				}
			}
			for i, row := range expected {
				y := got + i
				for x := range row {
					if rows[y][x] != row[x] {
						t.Fatalf("row %d = %v, expected %v", y, rows[y], row)
					}
				}
			}
		})
	}
}

func TestClearFullRowsAll(t *testing.T) {
	f := NewPlayfield(4, 6)
	for y := 0; y < 6; y++ {
		fillRow(f, y, KindL)
	}
	if got := f.ClearFullRows(); got != 6 {
		t.Errorf("ClearFullRows() on full grid = %d, expected 6", got)
	}
	for y, row := range f.Rows() {
		for x, c := range row {
			if c != KindNone {
				t.Errorf("cell (%d, %d) = %s after clearing everything", x, y, c)
			}
		}
	}
}

func TestClearWithGapScenario(t *testing.T) {
	f := NewPlayfield(10, 24)

	if f.Merge(Piece{Kind: KindO, Shape: ShapeOf(KindO), X: 4, Y: 22}) {
		t.Fatal("merge inside the field reported overflow")
	}
	for _, x := range []int{2, 6, 8} {
		f.Merge(Piece{Kind: KindO, Shape: ShapeOf(KindO), X: x, Y: 22})
	}
	// Column 1 filled, column 0 left open in both rows
	f.Set(1, 22, KindJ)
	f.Set(1, 23, KindJ)

	if got := f.ClearFullRows(); got != 0 {
		t.Fatalf("ClearFullRows() with gap = %d, expected 0", got)
	}

	f.Set(0, 23, KindL)
	if got := f.ClearFullRows(); got != 1 {
		t.Fatalf("ClearFullRows() after filling gap = %d, expected 1", got)
	}

	rows := f.Rows()
	for x, c := range rows[0] {
		if c != KindNone {
			t.Errorf("row 0 cell %d = %s, expected empty", x, c)
		}
	}
	// Former row 22 dropped to the bottom, gap included
	if rows[23][0] != KindNone || rows[23][1] != KindJ || rows[23][4] != KindO {
		t.Errorf("bottom row after clear = %v", rows[23])
	}
	for x, c := range rows[22] {
		if c != KindNone {
			t.Errorf("row 22 cell %d = %s, expected empty", x, c)
		}
	}
}

func TestMergeOverflow(t *testing.T) {
	f := NewPlayfield(10, 24)
	p := Piece{Kind: KindO, Shape: ShapeOf(KindO), X: 0, Y: -1}

	if !f.Merge(p) {
		t.Error("Merge above row 0 did not report overflow")
	}
	if f.Cell(0, 0) != KindO || f.Cell(1, 0) != KindO {
		t.Error("in-field cells of an overflowing piece were not merged")
	}
}

func TestPlayfieldBounds(t *testing.T) {
	f := NewPlayfield(10, 24)
	f.Set(-1, 0, KindI)
	f.Set(10, 0, KindI)
	f.Set(0, 24, KindI)

	if f.Cell(-1, 0) != KindNone || f.Occupied(10, 5) || f.Occupied(0, -1) {
		t.Error("out of range cells report content")
	}
}

func TestPlayfieldResetAndRows(t *testing.T) {
	f := NewPlayfield(10, 24)
	f.Set(3, 7, KindS)

	rows := f.Rows()
	rows[7][3] = KindNone
	if f.Cell(3, 7) != KindS {
		t.Error("mutating Rows() changed the playfield")
	}

	f.Reset()
	if f.Occupied(3, 7) {
		t.Error("Reset left a filled cell")
	}
}

func TestNewPlayfieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPlayfield(0, 24) did not panic")
		}
	}()
	NewPlayfield(0, 24)
}
