package domain

import "time"

// Lookup records one resolved schedule fetch.
type Lookup struct {
	ID        int64
	Query     string
	Code      string
	URL       string
	FetchedAt time.Time
}
