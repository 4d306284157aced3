package scaffold

// State is a step of a scaffold run.
type State int

const (
	StateCollectingParameters State = iota
	StateConfirmingDestination
	StateCreatingDirectories
	StateRenderingArtifacts
	StateDone
	StateAborted
	StateFailed
)

var stateNames = [...]string{
	StateCollectingParameters:  "CollectingParameters",
	StateConfirmingDestination: "ConfirmingDestination",
	StateCreatingDirectories:   "CreatingDirectories",
	StateRenderingArtifacts:    "RenderingArtifacts",
	StateDone:                  "Done",
	StateAborted:               "Aborted",
	StateFailed:                "Failed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted || s == StateFailed
}
