package logging

import (
	"fmt"
	"io"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New returns a Logger for the named backend together with a flush function
// that should be called before the process exits.
func New(backend string, w io.Writer, level string) (Logger, func() error, error) {
	switch backend {
	case BackendSlog, "":
		l, err := NewSlog(w, level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		return l, func() error { return nil }, nil
	case BackendZap:
		l := NewZap(w, level)
		return l, l.Sync, nil
	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
