package rule

// Thermo requires digits to strictly increase along each thermometer,
// from bulb to tip. Thermometers are derived from the solution: any
// bending path of strictly increasing values qualifies.
type Thermo struct {
	lineRule
}

// NewThermo returns the thermometer variant.
func NewThermo(opts Options) *Thermo {
	opts = opts.withDefaults()
	return &Thermo{lineRule{
		base: base{
			name:        "Thermo Sudoku",
			description: "Digits strictly increase along each thermometer",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
		spec: lineSpec{
			minLen:   3,
			maxLen:   5,
			keepProb: 0.5,
			diagonal: true,
			step:     func(a, b int) bool { return b > a },
		},
		minLines: 3,
	}}
}

func init() {
	Register("thermo", func(opts Options) Rule { return NewThermo(opts) })
}
