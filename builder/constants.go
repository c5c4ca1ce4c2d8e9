// Package builder defines shared constants used by the arc sampler.
package builder

//-----------------------------------------------------------------------------
// Method tags, used to prefix errors with the entry point for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodWriteInstance is the canonical name for WriteInstance.
	MethodWriteInstance = "WriteInstance"
	// MethodRandomFlowNetwork is the canonical name for the RandomFlowNetwork constructor.
	MethodRandomFlowNetwork = "RandomFlowNetwork"
)

//-----------------------------------------------------------------------------
// Domains
//-----------------------------------------------------------------------------

// MinNodes is the smallest node count; a one-node network has no arcs but
// is a valid instance (source and sink coincide).
const MinNodes = 1

// DefaultMinCapacity and DefaultMaxCapacity bound the default uniform
// capacity distribution, inclusive.
const (
	DefaultMinCapacity int64 = 1
	DefaultMaxCapacity int64 = 100
)

// DefaultMaxCells caps the presence matrix at 1Gi cells (one byte each),
// about 32k nodes. Larger requests track accepted pairs in a set instead.
// WithMaxCells(0) forces the matrix.
const DefaultMaxCells = 1 << 30

// cancelCheckInterval is how many draws pass between context checks.
const cancelCheckInterval = 1 << 12
