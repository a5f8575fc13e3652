package domain

import "fmt"

// NotFoundError indicates the index page has no row for the requested line.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schedule not found: %s", e.Name)
}

// ParseError indicates the index page no longer matches the expected
// table/row/label/anchor structure.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse schedule index: %s", e.Detail)
}
