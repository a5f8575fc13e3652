package domain

import (
	"context"
	"log"
	"time"
)

// ScheduleService orchestrates the resolution pipeline: normalize the
// requested name, locate the published PDF, download it.
type ScheduleService struct {
	normalizer Normalizer
	locator    Locator
	downloader Downloader
	store      LookupStore
}

// NewScheduleService creates a new ScheduleService. A nil store
// disables lookup history.
func NewScheduleService(n Normalizer, l Locator, d Downloader, store LookupStore) *ScheduleService {
	return &ScheduleService{
		normalizer: n,
		locator:    l,
		downloader: d,
		store:      store,
	}
}

// Fetch resolves query to a timetable PDF and downloads it into dest.
// The steps are strictly sequential, each depending on the previous
// result; any error propagates unmodified.
func (s *ScheduleService) Fetch(ctx context.Context, query string, dest Destination) (*Lookup, error) {
	code := s.normalizer.Normalize(query)

	pdfURL, err := s.locator.Locate(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.downloader.Download(ctx, pdfURL, dest); err != nil {
		return nil, err
	}

	lookup := &Lookup{
		Query:     query,
		Code:      code,
		URL:       pdfURL,
		FetchedAt: time.Now(),
	}
	if s.store != nil {
		// History must never fail the fetch.
		if err := s.store.Record(ctx, lookup); err != nil {
			log.Printf("warning: failed to record lookup: %v", err)
		}
	}
	return lookup, nil
}
