package snake

// Body is the snake's ordered cell sequence, head first.
// It is a growable ring buffer so moving (push head, pop tail) is O(1).
type Body struct {
	buf   []Cell
	head  int // index of the head cell in buf
	count int
}

// NewBody creates a body from cells ordered head to tail.
func NewBody(cells ...Cell) *Body {
	b := &Body{buf: make([]Cell, max(4, len(cells)))}
	for i := len(cells) - 1; i >= 0; i-- {
		b.PushFront(cells[i])
	}
	return b
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return b.count
}

// Head returns the front cell. The body must not be empty.
func (b *Body) Head() Cell {
	return b.buf[b.head]
}

// Tail returns the back cell. The body must not be empty.
func (b *Body) Tail() Cell {
	return b.At(b.count - 1)
}

// At returns the i-th cell counting from the head.
func (b *Body) At(i int) Cell {
	return b.buf[(b.head+i)%len(b.buf)]
}

// PushFront adds a new head.
func (b *Body) PushFront(c Cell) {
	if b.count == len(b.buf) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.head] = c
	b.count++
}

// PopBack removes and returns the tail.
func (b *Body) PopBack() (Cell, bool) {
	if b.count == 0 {
		return NoCell, false
	}
	c := b.Tail()
	b.count--
	return c, true
}

// Contains reports whether c is part of the body. Linear in the body length.
func (b *Body) Contains(c Cell) bool {
	for i := 0; i < b.count; i++ {
		if b.At(i) == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body ordered head to tail.
func (b *Body) Cells() []Cell {
	out := make([]Cell, b.count)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Reset replaces the body with cells ordered head to tail.
func (b *Body) Reset(cells ...Cell) {
	b.head = 0
	b.count = 0
	for i := len(cells) - 1; i >= 0; i-- {
		b.PushFront(cells[i])
	}
}

// grow doubles the capacity, unrolling the ring so the head sits at index 0.
func (b *Body) grow() {
	next := make([]Cell, len(b.buf)*2)
	for i := 0; i < b.count; i++ {
		next[i] = b.At(i)
	}
	b.buf = next
	b.head = 0
}
