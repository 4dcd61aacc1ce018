package trm

import "testing"

func TestPatternConfig_Classify(t *testing.T) {
	config := DefaultPatternConfig()

	tests := []struct {
		in   rune
		kind PatternKind
	}{
		{'_', PatternRequireBlank},
		{'*', PatternRequireNonBlank},
		{'.', PatternMatchAny},
		{'0', PatternLiteral},
		{'x', PatternLiteral},
	}
	for _, tt := range tests {
		p := config.Classify(tt.in)
		if p.Kind != tt.kind {
			t.Errorf("Classify(%q).Kind = %v, want %v", tt.in, p.Kind, tt.kind)
		}
		if tt.kind == PatternLiteral && p.Literal != tt.in {
			t.Errorf("Classify(%q).Literal = %q, want %q", tt.in, p.Literal, tt.in)
		}
	}
}

func TestPatternConfig_CustomCharacters(t *testing.T) {
	config := PatternConfig{Empty: 'e', Some: 's', Any: 'a'}

	if p := config.Classify('e'); p.Kind != PatternRequireBlank {
		t.Errorf("Classify('e').Kind = %v, want PatternRequireBlank", p.Kind)
	}
	// The default wildcard characters are plain literals now.
	if p := config.Classify('_'); p.Kind != PatternLiteral {
		t.Errorf("Classify('_').Kind = %v, want PatternLiteral", p.Kind)
	}
}

func TestSymbolPattern_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern SymbolPattern
		sym     rune
		ok      bool
		want    bool
	}{
		{"literal hit", SymbolPattern{Kind: PatternLiteral, Literal: '0'}, '0', true, true},
		{"literal miss", SymbolPattern{Kind: PatternLiteral, Literal: '0'}, '1', true, false},
		{"literal on blank", SymbolPattern{Kind: PatternLiteral, Literal: '0'}, 0, false, false},
		{"blank on blank", SymbolPattern{Kind: PatternRequireBlank}, 0, false, true},
		{"blank on symbol", SymbolPattern{Kind: PatternRequireBlank}, '0', true, false},
		{"nonblank on symbol", SymbolPattern{Kind: PatternRequireNonBlank}, '0', true, true},
		{"nonblank on blank", SymbolPattern{Kind: PatternRequireNonBlank}, 0, false, false},
		{"any on symbol", SymbolPattern{Kind: PatternMatchAny}, '0', true, true},
		{"any on blank", SymbolPattern{Kind: PatternMatchAny}, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pattern.Matches(tt.sym, tt.ok); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.sym, tt.ok, got, tt.want)
			}
		})
	}
}

func TestSymbolPattern_IsWildcard(t *testing.T) {
	config := DefaultPatternConfig()
	patterns := config.Parse([]rune("0_*."))
	want := []bool{false, true, true, true}
	for i, p := range patterns {
		if p.IsWildcard() != want[i] {
			t.Errorf("patterns[%d].IsWildcard() = %v, want %v", i, p.IsWildcard(), want[i])
		}
	}
}
