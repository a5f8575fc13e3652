// Package gotransit locates published timetable PDFs on the GO Transit
// full-schedules index page.
package gotransit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sched/internal/domain"
)

const userAgent = "sched/1.0"

// Locator finds timetable PDF links on the schedules index page.
//
// The page contract is a table with class "content-page-table" whose
// body rows each carry a bolded line label and an anchor to the PDF.
// Any deviation from that shape is a domain.ParseError rather than a
// skipped row: it means the page layout changed incompatibly.
type Locator struct {
	indexURL string
	client   *http.Client
}

// NewLocator creates a Locator querying indexURL.
func NewLocator(indexURL string, timeout time.Duration) *Locator {
	return &Locator{
		indexURL: indexURL,
		client:   &http.Client{Timeout: timeout},
	}
}

// Locate fetches the index page and returns the absolute URL of the
// PDF whose row label or link text equals name, case-insensitively.
// The first matching row wins, label checked before link text.
func (l *Locator) Locate(ctx context.Context, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.indexURL, nil)
	if err != nil {
		return "", fmt.Errorf("build index request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch schedule index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch schedule index: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &domain.ParseError{Detail: err.Error()}
	}

	href, err := findRow(doc, name)
	if err != nil {
		return "", err
	}

	base, err := url.Parse(l.indexURL)
	if err != nil {
		return "", fmt.Errorf("parse index URL %q: %w", l.indexURL, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", &domain.ParseError{Detail: fmt.Sprintf("row href %q: %v", href, err)}
	}
	return base.ResolveReference(ref).String(), nil
}

// findRow walks the schedule table and returns the href of the first
// row whose label or link text matches name.
func findRow(doc *goquery.Document, name string) (string, error) {
	tbody := doc.Find("table.content-page-table > tbody").First()
	if tbody.Length() == 0 {
		return "", &domain.ParseError{Detail: "schedule table not found"}
	}

	var (
		href   string
		found  bool
		rowErr error
	)
	tbody.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		label := tr.Find("strong").First()
		if label.Length() == 0 {
			rowErr = &domain.ParseError{Detail: "row without line label"}
			return false
		}
		link := tr.Find("a").First()
		if link.Length() == 0 {
			rowErr = &domain.ParseError{Detail: "row without schedule link"}
			return false
		}

		if !matches(label.Text(), name) && !matches(link.Text(), name) {
			return true
		}

		h, ok := link.Attr("href")
		if !ok {
			rowErr = &domain.ParseError{Detail: "matched row link without href"}
			return false
		}
		href = h
		found = true
		return false
	})
	if rowErr != nil {
		return "", rowErr
	}
	if !found {
		return "", &domain.NotFoundError{Name: name}
	}
	return href, nil
}

func matches(text, name string) bool {
	return strings.EqualFold(strings.TrimSpace(text), name)
}
