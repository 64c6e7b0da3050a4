package palette

import (
	"fmt"
	"time"
)

// Source kinds accepted by NewSource.
const (
	KindBundled = "bundled"
	KindRemote  = "remote"
)

// Options selects and configures a Source.
type Options struct {
	Kind    string        // "bundled" (default) or "remote"
	Data    string        // optional palette data file replacing the embedded one
	URL     string        // remote fragment URL template
	Timeout time.Duration // remote fetch timeout
}

// NewSource builds the Source described by opts.
func NewSource(opts Options) (Source, error) {
	var (
		bundled *Bundled
		err     error
	)
	if opts.Data != "" {
		bundled, err = LoadBundled(opts.Data)
	} else {
		bundled, err = NewBundled()
	}
	if err != nil {
		return nil, err
	}

	switch opts.Kind {
	case "", KindBundled:
		return bundled, nil
	case KindRemote:
		return NewRemote(opts.URL, opts.Timeout, bundled), nil
	default:
		return nil, fmt.Errorf("unknown palette source %q (valid: %s, %s)", opts.Kind, KindBundled, KindRemote)
	}
}
