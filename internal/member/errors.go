package member

import "errors"

var (
	// ErrUnsupportedRestraint is returned for a bending segment with only
	// one end restrained (cantilever segments of AS4100 Cl 5.6.2)
	ErrUnsupportedRestraint = errors.New("segment restraint combination not supported")
	// ErrUnrestrained is returned when neither end of a bending segment is restrained
	ErrUnrestrained = errors.New("both segment ends unrestrained")
	// ErrInvalidInput is returned for a negative or non-finite length or factor
	ErrInvalidInput = errors.New("invalid member input")
)
