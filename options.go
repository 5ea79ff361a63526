package miniconf

import (
	"fmt"
	"log/slog"
)

const defaultMaxDepth = 1000

// Option configures Parse, Unmarshal and Marshal.
type Option func(*options) error

type options struct {
	filename string
	root     string
	maxDepth int
	logger   *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		root:     DefaultRootSection,
		maxDepth: defaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithFilename sets the file name reported in syntax errors.
func WithFilename(name string) Option {
	return func(o *options) error {
		o.filename = name
		return nil
	}
}

// WithRootSection renames the implicit section that holds entries declared
// before any section header. The name must be a valid identifier.
func WithRootSection(name string) Option {
	return func(o *options) error {
		if !IsIdent(name) {
			return fmt.Errorf("miniconf: invalid root section name %q", name)
		}
		o.root = name
		return nil
	}
}

// MaxDepth sets the maximum nesting of array and object literals. Deeper
// values fail with an InvalidValue error instead of recursing further.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("miniconf: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// WithLogger sets the logger that receives debug records while the document
// is built. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
		return nil
	}
}
