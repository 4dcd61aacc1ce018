package trm

// PatternKind classifies one consume character.
type PatternKind int

const (
	// PatternLiteral matches exactly one symbol.
	PatternLiteral PatternKind = iota
	// PatternRequireBlank matches only a blank cell.
	PatternRequireBlank
	// PatternRequireNonBlank matches any written cell.
	PatternRequireNonBlank
	// PatternMatchAny matches everything.
	PatternMatchAny
)

// SymbolPattern is the match rule derived from a single consume character.
type SymbolPattern struct {
	Kind    PatternKind
	Literal rune
}

// Matches reports whether the pattern accepts the symbol read from a tape.
// ok is false for a blank cell.
func (p SymbolPattern) Matches(sym rune, ok bool) bool {
	switch p.Kind {
	case PatternLiteral:
		return ok && sym == p.Literal
	case PatternRequireBlank:
		return !ok
	case PatternRequireNonBlank:
		return ok
	default:
		return true
	}
}

// IsWildcard reports whether the pattern is anything other than a literal.
// Wildcard count decides between competing transitions: fewer wildcards wins.
func (p SymbolPattern) IsWildcard() bool {
	return p.Kind != PatternLiteral
}

// PatternConfig holds the special characters that turn a consume character
// into a wildcard. It is threaded through construction and matching; there is
// no mutable package-level default.
type PatternConfig struct {
	Empty rune // consume: require blank; also renders blanks in snapshots
	Some  rune // consume: require any written symbol
	Any   rune // consume: match anything
}

// DefaultPatternConfig returns the standard wildcard characters.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{Empty: '_', Some: '*', Any: '.'}
}

// Classify maps one consume character to its pattern.
func (c PatternConfig) Classify(r rune) SymbolPattern {
	switch r {
	case c.Empty:
		return SymbolPattern{Kind: PatternRequireBlank}
	case c.Some:
		return SymbolPattern{Kind: PatternRequireNonBlank}
	case c.Any:
		return SymbolPattern{Kind: PatternMatchAny}
	default:
		return SymbolPattern{Kind: PatternLiteral, Literal: r}
	}
}

// Parse classifies a full consume vector.
func (c PatternConfig) Parse(consume []rune) []SymbolPattern {
	patterns := make([]SymbolPattern, len(consume))
	for i, r := range consume {
		patterns[i] = c.Classify(r)
	}
	return patterns
}
