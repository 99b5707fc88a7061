package puzzle

// DefaultDir is the directory ReadInput resolves names against.
const DefaultDir = "src"

// DefaultCellWidth is the number of spaces Render writes for a missing cell.
const DefaultCellWidth = 1

// Option configures ReadInput and Render.
type Option func(*options)

type options struct {
	dir       string
	cellWidth int
}

// WithDir overrides the input directory.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithCellWidth sets the blank padding used for missing cells.
// Panics if n < 0.
func WithCellWidth(n int) Option {
	if n < 0 {
		panic("puzzle: WithCellWidth(n<0)")
	}
	return func(o *options) { o.cellWidth = n }
}

func gatherOptions(opts []Option) options {
	o := options{dir: DefaultDir, cellWidth: DefaultCellWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
