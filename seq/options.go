package seq

// Option configures SplitWith.
type Option func(*options)

type options struct {
	matchInPre  bool
	matchInPost bool
}

// WithMatchInPre appends each matching element to the segment before it.
func WithMatchInPre() Option {
	return func(o *options) { o.matchInPre = true }
}

// WithMatchInPost prepends each matching element to the segment after it.
func WithMatchInPost() Option {
	return func(o *options) { o.matchInPost = true }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
