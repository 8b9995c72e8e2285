package core

// Board is a rectangular grid of tile values.
// Cells are stored in row-major order: index = row*width + col.
// Every cell holds a value whenever the board is observable by a caller.
type Board[T comparable] struct {
	width  int
	height int
	cells  []T
}

// New creates a width x height board filled row-major from gen.
func New[T comparable](gen Generator[T], width, height int) (*Board[T], error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	b := &Board[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	for i := range b.cells {
		v, err := next(gen)
		if err != nil {
			return nil, err
		}
		b.cells[i] = v
	}
	return b, nil
}

// FromCells creates a board from a row-major list of values.
// The slice is copied.
func FromCells[T comparable](width, height int, cells []T) (*Board[T], error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	if err := validateCellCount(width, height, len(cells)); err != nil {
		return nil, err
	}

	b := &Board[T]{
		width:  width,
		height: height,
		cells:  make([]T, len(cells)),
	}
	copy(b.cells, cells)
	return b, nil
}

// Width returns the number of columns.
func (b *Board[T]) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board[T]) Height() int {
	return b.height
}

// index converts a position to a flat array index.
func (b *Board[T]) index(p Position) int {
	return p.Row*b.width + p.Col
}

// InBounds returns true if the position lies on the board.
func (b *Board[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// Piece returns the value at p.
// The second result is false if p is out of bounds.
func (b *Board[T]) Piece(p Position) (T, bool) {
	if !b.InBounds(p) {
		var zero T
		return zero, false
	}
	return b.cells[b.index(p)], true
}

// Positions returns all positions in row-major order.
func (b *Board[T]) Positions() []Position {
	positions := make([]Position, 0, b.width*b.height)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			positions = append(positions, P(row, col))
		}
	}
	return positions
}

// Cells returns a row-major copy of all values.
func (b *Board[T]) Cells() []T {
	cells := make([]T, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Rows returns a copy of the values grouped by row.
func (b *Board[T]) Rows() [][]T {
	rows := make([][]T, b.height)
	for row := range rows {
		rows[row] = make([]T, b.width)
		copy(rows[row], b.cells[row*b.width:(row+1)*b.width])
	}
	return rows
}

// Clone returns a structural copy of the board.
func (b *Board[T]) Clone() *Board[T] {
	cells := make([]T, len(b.cells))
	copy(cells, b.cells)
	return &Board[T]{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board[T]) Equal(other *Board[T]) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i, v := range b.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// swap exchanges the values at a and c in place.
func (b *Board[T]) swap(a, c Position) {
	i, j := b.index(a), b.index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// at returns the value at an in-bounds position.
func (b *Board[T]) at(row, col int) T {
	return b.cells[row*b.width+col]
}
