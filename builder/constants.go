package builder

// Method names prefix constructor errors.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodRandomState  = "RandomState"
)

// MinCycleNodes is the smallest cycle without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path; each end carries its own boundary edge.
const MinPathNodes = 2

// MinGridDim is the smallest rows/cols value for Grid.
const MinGridDim = 1

// GridMaxDegree is the slot capacity a Grid with at least two rows and
// columns needs: boundary or left, right, up, down.
const GridMaxDegree = 4

// DefaultEdgeWeight is the ×4 weight of every edge when no WeightFn is set
// (2 in real units).
const DefaultEdgeWeight uint32 = 8

// Probability bounds for RandomSparse and WithClaimProbability, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// RandomState defaults.
const (
	DefaultClaimProbability = 0.75
	DefaultMaxRadius        = uint64(64)
)
