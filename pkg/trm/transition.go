package trm

import "strings"

// Direction is one head movement.
type Direction int

const (
	Left Direction = iota
	Right
	Stay
)

// String returns the direction's model letter.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "S"
	}
}

// Transition is one rule of a state: per-tape consume patterns, per-tape
// produce symbols, per-tape head movements, and the target state's name.
// Targets are held by name and resolved when the transition fires, so models
// with cyclic or forward references need no construction ordering.
type Transition struct {
	Consume  []rune
	Produce  []rune
	Moves    []Direction
	Next     string
	patterns []SymbolPattern
}

// arity is the number of tapes the transition expects.
func (t *Transition) arity() int {
	return len(t.Consume)
}

// matches reports whether every per-tape pattern accepts the symbol currently
// under that tape's head.
func (t *Transition) matches(tapes []*Tape) bool {
	if len(tapes) != len(t.patterns) {
		return false
	}
	for i, p := range t.patterns {
		sym, ok := tapes[i].Read()
		if !p.Matches(sym, ok) {
			return false
		}
	}
	return true
}

// wildcards counts non-literal consume positions, the tie-break metric for
// transition selection.
func (t *Transition) wildcards() int {
	n := 0
	for _, p := range t.patterns {
		if p.IsWildcard() {
			n++
		}
	}
	return n
}

// parseTransition validates one transition document and compiles its consume
// patterns against the machine's wildcard configuration.
func parseTransition(doc TransitionModel, config PatternConfig) (*Transition, error) {
	doc.normalize()
	consume := []rune(doc.Cons)
	produce := []rune(doc.Prod)
	if len(consume) != len(produce) {
		return nil, syntaxErrorf(ConsumeProduceMismatch,
			"transition %q -> %q: consume and produce symbols do not match", doc.Cons, doc.Prod)
	}
	moves, err := parseDirections(doc)
	if err != nil {
		return nil, err
	}
	if len(moves) != len(consume) {
		return nil, syntaxErrorf(ConsumeProduceMismatch,
			"transition %q -> %q: consume does not match move direction %q", doc.Cons, doc.Prod, doc.Move)
	}
	return &Transition{
		Consume:  consume,
		Produce:  produce,
		Moves:    moves,
		Next:     doc.Next,
		patterns: config.Parse(consume),
	}, nil
}

// parseDirections maps the move string to per-tape directions,
// case-insensitively.
func parseDirections(doc TransitionModel) ([]Direction, error) {
	upper := strings.ToUpper(doc.Move)
	moves := make([]Direction, 0, len(upper))
	for _, c := range upper {
		switch c {
		case 'L':
			moves = append(moves, Left)
		case 'R':
			moves = append(moves, Right)
		case 'S':
			moves = append(moves, Stay)
		default:
			return nil, syntaxErrorf(DirectionNotFound,
				"transition %q -> %q: direction %q not found", doc.Cons, doc.Prod, string(c))
		}
	}
	return moves, nil
}

// model returns the transition's serializable form.
func (t *Transition) model() TransitionModel {
	var moves strings.Builder
	for _, d := range t.Moves {
		moves.WriteString(d.String())
	}
	return TransitionModel{
		Cons: string(t.Consume),
		Prod: string(t.Produce),
		Move: moves.String(),
		Next: t.Next,
	}
}
