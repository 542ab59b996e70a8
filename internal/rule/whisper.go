package rule

// Whisper requires adjacent cells along each whisper line to differ by at
// least 5. Lines are derived from the solution.
type Whisper struct {
	lineRule
}

// NewWhisper returns the whisper-line variant.
func NewWhisper(opts Options) *Whisper {
	opts = opts.withDefaults()
	return &Whisper{lineRule{
		base: base{
			name:        "Whisper Sudoku",
			description: "Adjacent cells along whisper lines differ by at least 5",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
		spec: lineSpec{
			minLen:   3,
			maxLen:   6,
			keepProb: 0.5,
			step:     func(a, b int) bool { return abs(a-b) >= 5 },
		},
		minLines: 3,
	}}
}

func init() {
	Register("whisper", func(opts Options) Rule { return NewWhisper(opts) })
}
