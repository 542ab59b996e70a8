package rule

// Kropki marks adjacent pairs with dots: white when the values differ by
// exactly 1, black when one is double the other. Dots are derived from
// the solution; unmarked pairs carry no constraint.
type Kropki struct {
	pairRule
}

// NewKropki returns the kropki-dot variant.
func NewKropki(opts Options) *Kropki {
	opts = opts.withDefaults()
	return &Kropki{pairRule{
		base: base{
			name:        "Kropki Sudoku",
			description: "White dots join cells differing by 1, black dots cells in a 1:2 ratio",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng:      opts.Rand,
		keepProb: 0.3,
		minPairs: 4,
		classify: func(a, b int) (PairKind, bool) {
			// Black wins on the 1-2 pair, which satisfies both relations.
			if a == 2*b || b == 2*a {
				return BlackDot, true
			}
			if abs(a-b) == 1 {
				return WhiteDot, true
			}
			return 0, false
		},
	}}
}

func init() {
	Register("kropki", func(opts Options) Rule { return NewKropki(opts) })
}
