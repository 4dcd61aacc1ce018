package trm

// State is one node of the machine graph: a unique name, the start/final
// flags, and its outgoing transitions in declaration order.
type State struct {
	Name        string
	Start       bool
	Final       bool
	Transitions []*Transition
}

// parseState validates one state document.
func parseState(doc StateModel, config PatternConfig) (*State, error) {
	doc.normalize()
	transitions := make([]*Transition, 0, len(doc.Trans))
	for _, td := range doc.Trans {
		tr, err := parseTransition(td, config)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, tr)
	}
	return &State{
		Name:        doc.Name,
		Start:       doc.Start,
		Final:       doc.Final,
		Transitions: transitions,
	}, nil
}

// model returns the state's serializable form.
func (s *State) model() StateModel {
	trans := make([]TransitionModel, 0, len(s.Transitions))
	for _, t := range s.Transitions {
		trans = append(trans, t.model())
	}
	return StateModel{
		Name:  s.Name,
		Start: s.Start,
		Final: s.Final,
		Trans: trans,
	}
}
