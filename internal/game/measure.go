package game

import (
	"time"
)

const (
	// One measure of notation, eight lines long
	MeasureLength = 1000 * time.Millisecond
	// The time one notation line advances
	LineLength = 125 * time.Millisecond
	// Silence appended after the last measure
	TrailingMeasures = 5
)
