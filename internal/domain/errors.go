package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrSummaryNotFound = errors.New("summary image not found")
)

// SourceUnavailableError is returned when an external data source could not be read.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("could not fetch data from %s: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// RecordError describes one country that failed during a refresh batch.
type RecordError struct {
	Index int
	Name  string
	Err   error
}

func (e RecordError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("record #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record #%d (%s): %v", e.Index, e.Name, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }
