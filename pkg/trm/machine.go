package trm

// Machine is a deterministic multi-tape Turing machine instance. The state
// graph and wildcard configuration are immutable after construction; only the
// current state and the tapes change while stepping. Instances share nothing,
// so independent machines may be simulated concurrently as long as each one
// stays on a single goroutine.
type Machine struct {
	states       map[string]*State
	stateOrder   []string
	startState   string
	finalStates  map[string]struct{}
	currentState string
	tapes        []*Tape
	tapeCount    int
	config       PatternConfig
}

// MachineIdentifier is a read-only, serializable snapshot of a machine:
// the current state name plus one frozen tape per live tape. It is meant for
// printing, history logging and testing; it is never fed back into execution.
type MachineIdentifier struct {
	CurrentState string       `json:"current_state" toml:"current_state" yaml:"current_state"`
	Tape         []FrozenTape `json:"tape" toml:"tape" yaml:"tape"`
}

// New builds a machine from a model document in the given format.
func New(modelText string, format string) (*Machine, error) {
	model, err := DecodeModel(modelText, format)
	if err != nil {
		return nil, err
	}
	return FromModel(model)
}

// FromModel builds a machine from an already-decoded model. Validation is
// atomic: any error means no machine is produced. Target-state names are
// deliberately not checked here; a dangling target only surfaces as
// ErrNextStateNotFound when its transition actually fires.
func FromModel(model *Model) (*Machine, error) {
	config, err := model.patternConfig()
	if err != nil {
		return nil, err
	}

	states := make(map[string]*State, len(model.State))
	order := make([]string, 0, len(model.State))
	for _, doc := range model.State {
		state, err := parseState(doc, config)
		if err != nil {
			return nil, err
		}
		if _, seen := states[state.Name]; !seen {
			order = append(order, state.Name)
		}
		states[state.Name] = state
	}

	tapeCount := 0
	for _, name := range order {
		for _, tr := range states[name].Transitions {
			if tapeCount == 0 {
				tapeCount = tr.arity()
			} else if tr.arity() != tapeCount {
				return nil, syntaxErrorf(ConsumeProduceMismatch,
					"state %q: transition %q expects %d tapes, machine has %d",
					name, string(tr.Consume), tr.arity(), tapeCount)
			}
		}
	}
	if tapeCount == 0 {
		tapeCount = 1
	}

	var start []string
	finals := make(map[string]struct{})
	for _, name := range order {
		if states[name].Start {
			start = append(start, name)
		}
		if states[name].Final {
			finals[name] = struct{}{}
		}
	}
	if len(start) != 1 {
		return nil, syntaxErrorf(StartStateError,
			"expected exactly one start state, got %d", len(start))
	}

	return &Machine{
		states:       states,
		stateOrder:   order,
		startState:   start[0],
		finalStates:  finals,
		currentState: start[0],
		tapeCount:    tapeCount,
		config:       config,
	}, nil
}

// Reset moves the machine back to the start state and drops all tapes.
func (m *Machine) Reset() {
	m.currentState = m.startState
	m.tapes = nil
}

// Input seeds the first tape with the input string and gives every further
// configured tape a fresh blank one, replacing any previous tape set.
func (m *Machine) Input(input string) {
	tapes := make([]*Tape, 0, m.tapeCount)
	tapes = append(tapes, NewTape(input))
	for i := 1; i < m.tapeCount; i++ {
		tapes = append(tapes, NewTape(""))
	}
	m.tapes = tapes
}

// CurrentState returns the name of the machine's current state.
func (m *Machine) CurrentState() string {
	return m.currentState
}

// TapeCount returns the number of tapes the machine's transitions expect.
func (m *Machine) TapeCount() int {
	return m.tapeCount
}

// IsFinal reports whether the current state carries the final flag.
func (m *Machine) IsFinal() bool {
	_, ok := m.finalStates[m.currentState]
	return ok
}

// Identifier returns a snapshot of the current configuration.
func (m *Machine) Identifier() MachineIdentifier {
	tapes := make([]FrozenTape, 0, len(m.tapes))
	for _, t := range m.tapes {
		tapes = append(tapes, t.Freeze(m.config.Empty))
	}
	return MachineIdentifier{CurrentState: m.currentState, Tape: tapes}
}

// findTransition selects the transition to take from the given state: among
// all transitions whose full pattern set matches the current tapes, the one
// with the fewest wildcard consume positions wins, first-declared on ties.
func (m *Machine) findTransition(state *State) *Transition {
	var best *Transition
	bestWildcards := 0
	for _, tr := range state.Transitions {
		if !tr.matches(m.tapes) {
			continue
		}
		wc := tr.wildcards()
		if best == nil || wc < bestWildcards {
			best = tr
			bestWildcards = wc
		}
	}
	return best
}

// RunOnce advances the machine by exactly one step. It returns true when the
// machine halted because no transition matches; a halt mutates neither the
// tapes nor the current state. The target state is resolved before any tape
// is touched, so an ErrNextStateNotFound leaves the configuration unchanged.
func (m *Machine) RunOnce() (halted bool, err error) {
	state, ok := m.states[m.currentState]
	if !ok {
		return false, ErrNextStateNotFound
	}
	tr := m.findTransition(state)
	if tr == nil {
		return true, nil
	}
	next, ok := m.states[tr.Next]
	if !ok {
		return false, ErrNextStateNotFound
	}
	for i, tape := range m.tapes {
		// Equal consume/produce characters skip the write, keeping
		// wildcard-matched blank regions untouched.
		if tr.Consume[i] != tr.Produce[i] {
			tape.Write(tr.Produce[i])
		}
		tape.Move(tr.Moves[i])
	}
	m.currentState = next.Name
	return false, nil
}

// Run steps until the machine halts and reports whether it halted in a final
// state. No step limit is imposed; callers needing bounded execution must
// drive RunOnce themselves.
func (m *Machine) Run() (accepted bool, err error) {
	for {
		halted, err := m.RunOnce()
		if err != nil {
			return false, err
		}
		if halted {
			return m.IsFinal(), nil
		}
	}
}

// Model projects the live machine back into its document form, preserving the
// state order of the model it was built from.
func (m *Machine) Model() *Model {
	states := make([]StateModel, 0, len(m.stateOrder))
	for _, name := range m.stateOrder {
		states = append(states, m.states[name].model())
	}
	return &Model{State: states, Config: configModel(m.config)}
}
