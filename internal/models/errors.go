package models

import "fmt"

// ResolutionError indicates the search origin could not be resolved to a
// coordinate (no origin supplied, or geocoding returned nothing). Fatal to
// the request; never retried internally.
type ResolutionError struct {
	Query  string
	Reason string
}

func (e *ResolutionError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("could not resolve search origin: %s", e.Reason)
	}
	return fmt.Sprintf("could not resolve %q to a location: %s", e.Query, e.Reason)
}

// UpstreamError indicates the primary nearby/text search call failed
// (transport error or non-success API status). Fatal to the request;
// no partial results are returned.
type UpstreamError struct {
	Operation string
	Status    string
	Err       error
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s failed with status %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
