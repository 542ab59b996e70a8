package rule

// Futoshiki marks inequality relationships between adjacent cells.
// Every adjacent pair qualifies, so the keep probability is kept low to
// avoid plastering the grid with signs.
type Futoshiki struct {
	pairRule
}

// NewFutoshiki returns the futoshiki-inequality variant.
func NewFutoshiki(opts Options) *Futoshiki {
	opts = opts.withDefaults()
	return &Futoshiki{pairRule{
		base: base{
			name:        "Futoshiki Sudoku",
			description: "Inequality signs between cells indicate which neighbor is greater",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng:      opts.Rand,
		keepProb: 0.12,
		minPairs: 4,
		classify: func(a, b int) (PairKind, bool) {
			// Pairs are stored smaller-first; orientation carries the sign.
			if a < b {
				return LessThan, true
			}
			return 0, false
		},
	}}
}

func init() {
	Register("futoshiki", func(opts Options) Rule { return NewFutoshiki(opts) })
}
