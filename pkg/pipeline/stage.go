package pipeline

// Stage identifies one of the three ordered pipeline stages. The stage a
// module is declared in determines which merge strategy applies to its
// output and how the sink is invoked afterwards.
type Stage int

const (
	// StageModules runs regular collector modules; output merges additively.
	StageModules Stage = iota

	// StageImmutables runs authoritative modules; output overrides the
	// accumulated tree.
	StageImmutables

	// StagePost runs enhancer modules after the initial output write; each
	// layers onto the tree and triggers its own non-clean write.
	StagePost
)

// String returns the configuration name of the stage.
func (s Stage) String() string {
	switch s {
	case StageModules:
		return "modules"
	case StageImmutables:
		return "immutables"
	case StagePost:
		return "post"
	}
	return "unknown"
}
