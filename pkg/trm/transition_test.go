package trm

import "testing"

func TestParseTransition_Valid(t *testing.T) {
	tr, err := parseTransition(TransitionModel{
		Cons: "0_", Prod: "1x", Move: "rs", Next: "q1",
	}, DefaultPatternConfig())
	if err != nil {
		t.Fatalf("parseTransition() error = %v", err)
	}
	if tr.arity() != 2 {
		t.Errorf("arity() = %d, want 2", tr.arity())
	}
	if tr.Moves[0] != Right || tr.Moves[1] != Stay {
		t.Errorf("Moves = %v, want [R S] (case-insensitive)", tr.Moves)
	}
	if tr.Next != "q1" {
		t.Errorf("Next = %q, want %q", tr.Next, "q1")
	}
}

func TestParseTransition_Aliases(t *testing.T) {
	tr, err := parseTransition(TransitionModel{
		Consume: "0", Produce: "1", Move: "L", Next: "q0",
	}, DefaultPatternConfig())
	if err != nil {
		t.Fatalf("parseTransition() error = %v", err)
	}
	if string(tr.Consume) != "0" || string(tr.Produce) != "1" {
		t.Errorf("Consume/Produce = %q/%q, want 0/1",
			string(tr.Consume), string(tr.Produce))
	}
}

func TestParseTransition_LengthMismatch(t *testing.T) {
	_, err := parseTransition(TransitionModel{
		Cons: "01", Prod: "1", Move: "RR", Next: "q1",
	}, DefaultPatternConfig())
	if !IsSyntaxError(err, ConsumeProduceMismatch) {
		t.Errorf("error = %v, want ConsumeProduceMismatch", err)
	}
}

func TestParseTransition_DirectionLengthMismatch(t *testing.T) {
	_, err := parseTransition(TransitionModel{
		Cons: "01", Prod: "10", Move: "R", Next: "q1",
	}, DefaultPatternConfig())
	if !IsSyntaxError(err, ConsumeProduceMismatch) {
		t.Errorf("error = %v, want ConsumeProduceMismatch", err)
	}
}

func TestParseTransition_BadDirection(t *testing.T) {
	_, err := parseTransition(TransitionModel{
		Cons: "0", Prod: "1", Move: "X", Next: "q1",
	}, DefaultPatternConfig())
	if !IsSyntaxError(err, DirectionNotFound) {
		t.Errorf("error = %v, want DirectionNotFound", err)
	}
}

func TestTransition_ModelRoundTrip(t *testing.T) {
	doc := TransitionModel{Cons: "0*", Prod: "1*", Move: "RL", Next: "q2"}
	tr, err := parseTransition(doc, DefaultPatternConfig())
	if err != nil {
		t.Fatalf("parseTransition() error = %v", err)
	}
	got := tr.model()
	if got != doc {
		t.Errorf("model() = %+v, want %+v", got, doc)
	}
}

func TestTransition_Wildcards(t *testing.T) {
	config := DefaultPatternConfig()
	tests := []struct {
		cons string
		want int
	}{
		{"00", 0},
		{"0*", 1},
		{"._", 2},
	}
	for _, tt := range tests {
		tr, err := parseTransition(TransitionModel{
			Cons: tt.cons, Prod: tt.cons, Move: "SS", Next: "q0",
		}, config)
		if err != nil {
			t.Fatalf("parseTransition(%q) error = %v", tt.cons, err)
		}
		if got := tr.wildcards(); got != tt.want {
			t.Errorf("wildcards(%q) = %d, want %d", tt.cons, got, tt.want)
		}
	}
}
