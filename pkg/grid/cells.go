package grid

// Cells stores one value of type T per grid cell in row-major order.
type Cells[T any] struct {
	W, H int
	data []T
}

// NewCells allocates a table with the given dimensions, every cell holding
// the zero value of T.
func NewCells[T any](w, h int) *Cells[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Cells[T]{W: w, H: h, data: make([]T, w*h)}
}

// Raw exposes the backing slice so callers can read values directly.
func (c *Cells[T]) Raw() []T { return c.data }

// Index returns the linear slice index for coordinates (x, y).
func (c *Cells[T]) Index(x, y int) int { return y*c.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (c *Cells[T]) InBounds(x, y int) bool {
	return x >= 0 && x < c.W && y >= 0 && y < c.H
}

// At returns the value at (x, y), or the zero value when out of bounds.
func (c *Cells[T]) At(x, y int) T {
	if !c.InBounds(x, y) {
		var zero T
		return zero
	}
	return c.data[y*c.W+x]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (c *Cells[T]) Set(x, y int, v T) {
	if !c.InBounds(x, y) {
		return
	}
	c.data[y*c.W+x] = v
}

// Reset sets every cell to v.
func (c *Cells[T]) Reset(v T) {
	for i := range c.data {
		c.data[i] = v
	}
}
