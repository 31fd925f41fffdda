package cpu

// Phase is the stage of the instruction cycle being walked.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_FETCH    = Phase(iota) // fetch
	PHASE_DECODE                 // decode
	PHASE_SEQUENCE               // sequence
	PHASE_DONE                   // done
)
