package shader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stage identifies a shader stage. Values match the OpenGL enums so a GL
// device can pass them straight through.
type Stage uint32

const (
	StageFragment Stage = 0x8B30
	StageVertex   Stage = 0x8B31
)

// Valid reports whether s is a stage a program can hold.
func (s Stage) Valid() bool {
	return s == StageVertex || s == StageFragment
}

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(0x%X)", uint32(s))
	}
}

// StageForFile guesses the stage from a shader file extension.
func StageForFile(name string) (Stage, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".vert", ".vs", ".vsh":
		return StageVertex, nil
	case ".frag", ".fs", ".fsh":
		return StageFragment, nil
	}
	return 0, fmt.Errorf("%w: cannot infer stage of %q", ErrInvalidStage, name)
}

// Policy selects when compile and link results are checked.
type Policy int

const (
	// Immediate checks compile status on attach and link status on Link.
	Immediate Policy = iota
	// Deferred submits work without waiting and validates on the first Use,
	// letting the driver compile in the background.
	Deferred
)

func (p Policy) String() string {
	switch p {
	case Immediate:
		return "immediate"
	case Deferred:
		return "deferred"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "immediate", "sync":
		return Immediate, nil
	case "deferred", "async":
		return Deferred, nil
	}
	return 0, fmt.Errorf("unknown shader policy %q", s)
}

// State is the lifecycle state of a Program.
type State int

const (
	// StateBuilding: shaders may be attached, nothing linked yet.
	StateBuilding State = iota
	// StateLinkPending: link submitted, validation waits for the first Use.
	StateLinkPending
	// StateReady: validated and introspected.
	StateReady
	// StateFailed is terminal. The program handle has been released.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StateLinkPending:
		return "link-pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
