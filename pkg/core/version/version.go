// ============================================================================
// tms - Turing Machine Simulator
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2026-08-27
// License:     MIT
// ============================================================================

package version

// Version constants for the tms components
const (
	// Application version
	App = "0.1.0"

	// Component versions
	Engine  = "0.1.0"
	Runner  = "0.1.0"
	History = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "engine":
		return Engine
	case "runner":
		return Runner
	case "history":
		return History
	default:
		return App
	}
}
