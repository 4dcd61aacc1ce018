// Package trm simulates abstract multi-tape Turing machines.
//
// A machine is described by a declarative model of named states and their
// transitions, loaded from JSON, TOML or YAML. The engine executes the
// machine step by step until no transition matches the current configuration
// and reports the final (or any intermediate) configuration as a
// MachineIdentifier.
//
// Model documents list states with their transitions:
//
//	[[state]]
//	name = "q0"
//	start = true
//
//	[[state.trans]]
//	cons = "0"
//	prod = "1"
//	move = "R"
//	next = "q1"
//
//	[[state]]
//	name = "q1"
//	final = true
//
// Consume strings may use wildcard characters: `_` requires a blank cell,
// `*` requires a written cell, `.` matches anything. The characters are
// configurable through the optional `config` table. When several transitions
// match, the one with the fewest wildcard positions fires.
//
// Typical usage:
//
//	machine, err := trm.New(modelText, trm.FormatTOML)
//	if err != nil {
//		return err
//	}
//	machine.Input("1101")
//	accepted, err := machine.Run()
//
// Run has no step limit; callers that need a bound drive RunOnce in their
// own loop.
package trm
