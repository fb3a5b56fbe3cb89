// Package component computes connection component capacities: bolts,
// bolt groups, fillet welds and plates (AS4100 Section 9).
package component

import "errors"

var (
	ErrUnknownBolt = errors.New("unknown bolt")
	ErrUnknownWeld = errors.New("unknown weld")
)
