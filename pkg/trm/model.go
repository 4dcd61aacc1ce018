package trm

// Model is the canonical textual shape of a machine, shared by every codec.
// Decoding accepts long field aliases alongside the canonical short names
// (states/transitions/consume/produce); encoding always emits the short
// canonical names.
type Model struct {
	State  []StateModel `json:"state" toml:"state" yaml:"state"`
	States []StateModel `json:"states,omitempty" toml:"states,omitempty" yaml:"states,omitempty"`

	Config *ConfigModel `json:"config,omitempty" toml:"config,omitempty" yaml:"config,omitempty"`
}

// StateModel is one state entry of a model document.
type StateModel struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Start bool   `json:"start,omitempty" toml:"start,omitempty" yaml:"start,omitempty"`
	Final bool   `json:"final,omitempty" toml:"final,omitempty" yaml:"final,omitempty"`

	Trans       []TransitionModel `json:"trans" toml:"trans" yaml:"trans"`
	Transitions []TransitionModel `json:"transitions,omitempty" toml:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// TransitionModel is one transition entry of a state document.
type TransitionModel struct {
	Cons    string `json:"cons" toml:"cons" yaml:"cons"`
	Consume string `json:"consume,omitempty" toml:"consume,omitempty" yaml:"consume,omitempty"`

	Prod    string `json:"prod" toml:"prod" yaml:"prod"`
	Produce string `json:"produce,omitempty" toml:"produce,omitempty" yaml:"produce,omitempty"`

	Move string `json:"move" toml:"move" yaml:"move"`
	Next string `json:"next" toml:"next" yaml:"next"`
}

// ConfigModel is the optional wildcard-character table of a model document.
// Each entry is a single character; empty entries fall back to the defaults
// `_`, `*`, `.`.
type ConfigModel struct {
	Empty string `json:"empty,omitempty" toml:"empty,omitempty" yaml:"empty,omitempty"`
	Some  string `json:"some,omitempty" toml:"some,omitempty" yaml:"some,omitempty"`
	Any   string `json:"any,omitempty" toml:"any,omitempty" yaml:"any,omitempty"`
}

// normalize folds alias fields into the canonical ones. Canonical wins when
// both are present.
func (m *Model) normalize() {
	if len(m.State) == 0 {
		m.State = m.States
	}
	m.States = nil
}

func (s *StateModel) normalize() {
	if len(s.Trans) == 0 {
		s.Trans = s.Transitions
	}
	s.Transitions = nil
}

func (t *TransitionModel) normalize() {
	if t.Cons == "" {
		t.Cons = t.Consume
	}
	if t.Prod == "" {
		t.Prod = t.Produce
	}
	t.Consume = ""
	t.Produce = ""
}

// patternConfig resolves the document's wildcard table against the defaults.
func (m *Model) patternConfig() (PatternConfig, error) {
	config := DefaultPatternConfig()
	if m.Config == nil {
		return config, nil
	}
	set := func(field string, value string, dst *rune) error {
		if value == "" {
			return nil
		}
		runes := []rune(value)
		if len(runes) != 1 {
			return syntaxErrorf(SyntaxNotValid,
				"config.%s must be a single character, got %q", field, value)
		}
		*dst = runes[0]
		return nil
	}
	if err := set("empty", m.Config.Empty, &config.Empty); err != nil {
		return config, err
	}
	if err := set("some", m.Config.Some, &config.Some); err != nil {
		return config, err
	}
	if err := set("any", m.Config.Any, &config.Any); err != nil {
		return config, err
	}
	return config, nil
}

// configModel projects a pattern configuration back into document form.
func configModel(c PatternConfig) *ConfigModel {
	if c == DefaultPatternConfig() {
		return nil
	}
	return &ConfigModel{
		Empty: string(c.Empty),
		Some:  string(c.Some),
		Any:   string(c.Any),
	}
}
