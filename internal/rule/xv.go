package rule

// XV marks adjacent pairs summing to 10 with an X and pairs summing to 5
// with a V. Marks are derived from the solution; unmarked pairs carry no
// constraint.
type XV struct {
	pairRule
}

// NewXV returns the XV variant.
func NewXV(opts Options) *XV {
	opts = opts.withDefaults()
	return &XV{pairRule{
		base: base{
			name:        "XV Sudoku",
			description: "Cells joined by an X sum to 10, cells joined by a V sum to 5",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng:      opts.Rand,
		keepProb: 0.4,
		minPairs: 4,
		classify: func(a, b int) (PairKind, bool) {
			switch a + b {
			case 10:
				return XMark, true
			case 5:
				return VMark, true
			}
			return 0, false
		},
	}}
}

func init() {
	Register("xv", func(opts Options) Rule { return NewXV(opts) })
}
