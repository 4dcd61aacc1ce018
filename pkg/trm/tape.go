package trm

// blankCell marks an unwritten tape slot. Tapes store runes directly; a
// negative value can never collide with input symbols.
const blankCell rune = -1

// Tape is a single-track, bidirectionally infinite tape with a head.
// The head always sits on an allocated slot; the tape grows lazily when the
// head moves past either end. Growth prepends or appends blank slots in
// batches, so extension is amortized O(1) in both directions.
type Tape struct {
	cells  []rune
	head   int
	offset int // external index = internal index + offset
}

// FrozenTape is an immutable snapshot of a tape's non-blank window.
// Tape holds the symbols between the first and the last visible (non-blank)
// cell, with blanks inside the window rendered by the blank character the
// snapshot was taken with. Head is the head's external index, Start and End
// the external half-open range covering the window. An all-blank tape
// freezes to an empty string with Start == End == Head.
type FrozenTape struct {
	Tape  string `json:"tape" toml:"tape" yaml:"tape"`
	Head  int    `json:"head" toml:"head" yaml:"head"`
	Start int    `json:"start" toml:"start" yaml:"start"`
	End   int    `json:"end" toml:"end" yaml:"end"`
}

// NewTape creates a tape seeded with one slot per input symbol, the head on
// the first one. An empty input still allocates a single blank slot so the
// head is always valid.
func NewTape(input string) *Tape {
	runes := []rune(input)
	cells := make([]rune, 0, len(runes)+1)
	for _, r := range runes {
		cells = append(cells, r)
	}
	if len(cells) == 0 {
		cells = append(cells, blankCell)
	}
	return &Tape{cells: cells}
}

// Read returns the symbol under the head. ok is false on a blank slot.
func (t *Tape) Read() (sym rune, ok bool) {
	c := t.cells[t.head]
	if c == blankCell {
		return 0, false
	}
	return c, true
}

// Write sets the symbol under the head.
func (t *Tape) Write(sym rune) {
	t.cells[t.head] = sym
}

// WriteBlank clears the slot under the head without shrinking storage.
func (t *Tape) WriteBlank() {
	t.cells[t.head] = blankCell
}

// Head returns the head's external index.
func (t *Tape) Head() int {
	return t.head + t.offset
}

// MoveLeft moves the head one slot to the left, extending the tape when the
// head is at the left edge.
func (t *Tape) MoveLeft() {
	if t.head == 0 {
		t.growFront()
	}
	t.head--
}

// MoveRight moves the head one slot to the right, extending the tape when
// the head is at the right edge.
func (t *Tape) MoveRight() {
	if t.head == len(t.cells)-1 {
		t.growBack()
	}
	t.head++
}

// Move dispatches to MoveLeft or MoveRight; Stay is a no-op.
func (t *Tape) Move(d Direction) {
	switch d {
	case Left:
		t.MoveLeft()
	case Right:
		t.MoveRight()
	}
}

// growFront prepends a batch of blank slots. Extra slots are indistinguishable
// from untouched tape, so growing by more than one keeps extension amortized
// O(1) without changing observable behavior.
func (t *Tape) growFront() {
	grow := len(t.cells)
	if grow < 4 {
		grow = 4
	}
	cells := make([]rune, grow+len(t.cells))
	for i := 0; i < grow; i++ {
		cells[i] = blankCell
	}
	copy(cells[grow:], t.cells)
	t.cells = cells
	t.head += grow
	t.offset -= grow
}

// growBack appends a batch of blank slots.
func (t *Tape) growBack() {
	grow := len(t.cells)
	if grow < 4 {
		grow = 4
	}
	for i := 0; i < grow; i++ {
		t.cells = append(t.cells, blankCell)
	}
}

// Freeze returns a read-only snapshot of the tape. A slot counts as visible
// when it is written and its symbol differs from blank; slots holding the
// blank character itself bound the window like unwritten ones.
func (t *Tape) Freeze(blank rune) FrozenTape {
	first, last := -1, -1
	for i, c := range t.cells {
		if c == blankCell || c == blank {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		head := t.Head()
		return FrozenTape{Head: head, Start: head, End: head}
	}
	window := make([]rune, 0, last-first+1)
	for _, c := range t.cells[first : last+1] {
		if c == blankCell {
			c = blank
		}
		window = append(window, c)
	}
	return FrozenTape{
		Tape:  string(window),
		Head:  t.Head(),
		Start: first + t.offset,
		End:   last + 1 + t.offset,
	}
}
