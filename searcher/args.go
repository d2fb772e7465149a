package searcher

import "math"

// Hyperparameters for MCTS

// DefaultExploration is the exploration constant C in
// mean + C*sqrt(2*ln(N)/n).
const DefaultExploration = math.Sqrt2

// DefaultFinalPolicy ranks root children by mean utility per visit.
const DefaultFinalPolicy = MeanValue
