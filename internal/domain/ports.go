package domain

import (
	"context"
	"io"
)

// Normalizer maps a free-form line alias to its canonical code.
type Normalizer interface {
	Normalize(name string) string
}

// Locator resolves a canonical line code to the absolute URL of its
// published timetable PDF.
type Locator interface {
	Locate(ctx context.Context, name string) (string, error)
}

// Downloader retrieves a URL into a destination.
type Downloader interface {
	Download(ctx context.Context, url string, dest Destination) error
}

// Destination is a writable file target exclusively owned by the caller.
type Destination interface {
	Path() string
	Create() (io.WriteCloser, error)
}

// LookupStore is the driven port for lookup history persistence.
type LookupStore interface {
	Record(ctx context.Context, l *Lookup) error
	Recent(ctx context.Context, limit int) ([]Lookup, error)
}
