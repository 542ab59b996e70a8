package rule

// Chain requires adjacent cells along each chain line to differ by
// exactly 1. Chains may bend in any direction, including diagonally, and
// are derived from the solution.
type Chain struct {
	lineRule
}

// NewChain returns the chain-line variant.
func NewChain(opts Options) *Chain {
	opts = opts.withDefaults()
	return &Chain{lineRule{
		base: base{
			name:        "Chain Sudoku",
			description: "Chain lines connect cells with consecutive values",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
		spec: lineSpec{
			minLen:   3,
			maxLen:   7,
			keepProb: 0.6,
			diagonal: true,
			step:     func(a, b int) bool { return abs(a-b) == 1 },
		},
		minLines: 3,
	}}
}

func init() {
	Register("chain", func(opts Options) Rule { return NewChain(opts) })
}
