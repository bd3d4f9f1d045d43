package main

import "fmt"

// OutOfRangeError reports a requested line number outside the backing
// file, carrying the valid inclusive range observed during the scan.
type OutOfRangeError struct {
	Requested int
	Total     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("line %d is out of range 1..%d", e.Requested, e.Total)
}
