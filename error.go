package wib2

import "fmt"

// RangeError is the error returned when a sample, channel, or FEMB
// index falls outside the frame layout.
type RangeError struct {
	// What names the index that was rejected.
	What string
	// Index is the rejected value.
	Index int
	// Max is the largest valid value. Valid indices run from 0 to
	// Max inclusive.
	Max int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d]", e.What, e.Index, e.Max)
}

func rangeErr(what string, index, max int) error {
	return RangeError{what, index, max}
}
